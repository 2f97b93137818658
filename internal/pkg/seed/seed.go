package seed

import (
	"os"

	"gopkg.in/yaml.v3"

	"loyalty-ledger/internal/pkg/errs"
)

// File describes the optional startup seed: catalog items and demo users.
type File struct {
	Menu  []MenuItem `yaml:"menu"`
	Users []User     `yaml:"users"`
}

type MenuItem struct {
	Name  string `yaml:"name"`
	Image string `yaml:"image,omitempty"`
}

type User struct {
	Username     string `yaml:"username"`
	Email        string `yaml:"email"`
	PasswordHash string `yaml:"password_hash"`
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read seed file")
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errs.Wrap(err, "failed to parse seed file")
	}
	return &f, nil
}

// Default is the catalog the demo starts with when no seed file is given.
func Default() *File {
	return &File{
		Menu: []MenuItem{
			{Name: "Burger"},
			{Name: "Fries"},
			{Name: "Pizza"},
			{Name: "Soda"},
			{Name: "Salad"},
			{Name: "Ice Cream"},
		},
	}
}
