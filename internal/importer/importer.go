// Package importer loads users in bulk from spreadsheet uploads.
package importer

import (
	"context"
	"fmt"

	"github.com/hamstech/backend/internal/auth"
	"github.com/hamstech/backend/internal/models"
	"github.com/hamstech/backend/internal/utils"
)

// UserWriter performs the single bulk insert.
type UserWriter interface {
	BulkUpsert(ctx context.Context, users []models.User) (int64, error)
}

type Importer struct {
	users  UserWriter
	hasher *auth.Hasher
}

func New(users UserWriter, hasher *auth.Hasher) *Importer {
	return &Importer{users: users, hasher: hasher}
}

// Result summarises an import.
type Result struct {
	Inserted int64
	Skipped  int
}

// Import hashes the passwords and writes every complete row in one
// statement. Rows missing name, email or password, or with a malformed
// email, are skipped. When an email repeats, the last row wins and the
// earlier ones count as skipped. An invalid role aborts the whole import.
func (im *Importer) Import(ctx context.Context, rows []Row) (Result, error) {
	var res Result
	index := make(map[string]int, len(rows))
	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		email := auth.NormalizeEmail(row.Email)
		if row.Name == "" || email == "" || row.Password == "" || !utils.ValidateEmail(email) {
			res.Skipped++
			continue
		}
		role, err := auth.ParseRole(row.Role)
		if err != nil {
			return res, fmt.Errorf("row %d: %w", row.Line, err)
		}
		digest, err := im.hasher.Hash(row.Password)
		if err != nil {
			return res, fmt.Errorf("row %d: %w", row.Line, err)
		}
		u := models.User{
			Name:         row.Name,
			Email:        email,
			PasswordHash: digest,
			Role:         role,
		}
		if i, seen := index[email]; seen {
			users[i] = u
			res.Skipped++
			continue
		}
		index[email] = len(users)
		users = append(users, u)
	}
	if len(users) == 0 {
		return res, ErrEmptyInput
	}

	n, err := im.users.BulkUpsert(ctx, users)
	if err != nil {
		return res, err
	}
	res.Inserted = n
	return res, nil
}
