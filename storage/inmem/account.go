package inmemdb

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/kala/core"
	"github.com/trezcool/kala/core/session"
)

// Account is a login. Student accounts share their id with the student record.
type Account struct {
	ID           core.ID
	Name         string
	Email        string
	Role         session.Role
	PasswordHash []byte
}

func (a *Account) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	return nil
}

func (a Account) CheckPassword(pwd string) bool {
	return bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(pwd)) == nil
}

// CreateAdmin adds an admin account.
func (db *DB) CreateAdmin(name, email, pwd string) (Account, error) {
	acc := Account{Name: name, Email: core.CleanString(email, true /* lower */), Role: session.RoleAdmin}
	if err := acc.SetPassword(pwd); err != nil {
		return Account{}, err
	}

	t := db.account
	t.Lock()
	defer t.Unlock()
	for _, a := range t.table {
		if a.Email == acc.Email {
			return Account{}, ErrEmailExists
		}
	}
	t.pk++
	acc.ID = t.pk
	t.table[acc.ID] = &acc
	return acc, nil
}

// Authenticate returns the account of role matching email and pwd.
func (db *DB) Authenticate(email, pwd string, role session.Role) (Account, error) {
	email = core.CleanString(email, true /* lower */)

	var acc *Account
	if role == session.RoleAdmin {
		db.account.RLock()
		for _, a := range db.account.table {
			if a.Email == email {
				acc = a
				break
			}
		}
		db.account.RUnlock()
	} else {
		db.student.RLock()
		acc = db.studentAccounts()[email]
		db.student.RUnlock()
	}
	if acc == nil || !acc.CheckPassword(pwd) {
		return Account{}, ErrNotFound
	}
	return *acc, nil
}
