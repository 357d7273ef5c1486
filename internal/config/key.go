package config

import "kps/internal/kpserr"

// Key names one editable field of Config.
type Key string

const (
	KeyAuthor         Key = "author"
	KeySourceFolder   Key = "sourceFolder"
	KeyProjectName    Key = "projectName"
	KeyIDEProjectPath Key = "ideProjectPath"
)

// Keys returns every key in display order.
func Keys() []Key {
	return []Key{KeyAuthor, KeySourceFolder, KeyProjectName, KeyIDEProjectPath}
}

// ParseKey converts s to a Key. Unknown names fail with kpserr.ConfigInvalidKey.
func ParseKey(s string) (Key, error) {
	for _, k := range Keys() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", kpserr.InvalidKey(s)
}

func (k Key) Description() string {
	switch k {
	case KeyAuthor:
		return "Author name written into file headers"
	case KeySourceFolder:
		return "Folder holding solution files (e.g. 'Sources')"
	case KeyProjectName:
		return "Project name written into file headers"
	case KeyIDEProjectPath:
		return "IDE project opened alongside files, relative to the project root (empty to unset)"
	}
	return ""
}

// Optional reports whether the key may be absent from the file.
func (k Key) Optional() bool { return k == KeyIDEProjectPath }
