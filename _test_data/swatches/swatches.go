package swatches

import (
	"embed"
	"io/fs"
	"path/filepath"
)

//go:embed default/*.ase
var contents embed.FS

func List() []string {
	result := make([]string, 0)
	_ = fs.WalkDir(contents, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".ase" {
			result = append(result, path)
		}
		return nil
	})
	return result
}

func Open(name string) (fs.File, error) {
	return contents.Open(name)
}

func ReadFile(name string) ([]byte, error) {
	return contents.ReadFile(name)
}
