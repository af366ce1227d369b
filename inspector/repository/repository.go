package repository

import "golang.org/x/mod/modfile"

// Project represents the project an audited tree belongs to
type Project struct {
	RootPath string          // absolute path to the project root
	Type     string          // go, javascript, git or unknown
	Name     string          // module or package name, directory name otherwise
	Origin   string          // git origin URL if any
	GoModule *modfile.Module // go projects only
}
