package snapshot

import (
	"encoding/json"
	"os"

	"github.com/google/uuid"

	"loyalty-ledger/internal/domain/user"
	"loyalty-ledger/internal/pkg/errs"
)

// UserRecord is the persisted directory layout: a flat sequence of
// records, scanned by username or email, no schema versioning.
type UserRecord struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Points       int       `json:"points"`
}

// UserSnapshot persists the user directory to a JSON file. Only the
// directory is durable; reservations and the menu live for the process
// lifetime.
type UserSnapshot struct {
	path string
}

func NewUserSnapshot(path string) *UserSnapshot {
	return &UserSnapshot{path: path}
}

// Load reads the snapshot file. A missing file is not an error: the
// directory starts empty on first run.
func (s *UserSnapshot) Load() ([]*user.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to read user snapshot")
	}

	var records []UserRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errs.Wrap(err, "failed to decode user snapshot")
	}

	users := make([]*user.User, 0, len(records))
	for _, rec := range records {
		users = append(users, user.ReconstructUser(
			rec.ID,
			rec.Username,
			rec.Email,
			rec.PasswordHash,
			rec.Points,
		))
	}
	return users, nil
}

func (s *UserSnapshot) Save(users []*user.User) error {
	records := make([]UserRecord, 0, len(users))
	for _, u := range users {
		records = append(records, UserRecord{
			ID:           u.ID(),
			Username:     u.Username().Value(),
			Email:        u.Email().Value(),
			PasswordHash: u.PasswordHash(),
			Points:       u.Points(),
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errs.Wrap(err, "failed to encode user snapshot")
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errs.Wrap(err, "failed to write user snapshot")
	}
	return nil
}
