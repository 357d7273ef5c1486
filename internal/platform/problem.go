package platform

import "path/filepath"

// FileExtension is the extension of every generated solution file.
const FileExtension = "swift"

// Problem identifies one problem on one platform. The number is kept as the
// user typed it.
type Problem struct {
	Platform Platform
	Number   string
}

func NewProblem(p Platform, number string) Problem {
	return Problem{Platform: p, Number: number}
}

func (p Problem) URL() string { return p.Platform.BaseURL() + p.Number }

func (p Problem) FileName() string { return p.Number + "." + FileExtension }

// FunctionName is the solution symbol written into the template.
func (p Problem) FunctionName() string { return "_" + p.Number }

// FilePath is root/sourceFolder/<platform folder>/<number>.swift.
func (p Problem) FilePath(root, sourceFolder string) string {
	return filepath.Join(root, sourceFolder, p.Platform.FolderName(), p.FileName())
}
