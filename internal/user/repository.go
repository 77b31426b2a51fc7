package user

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"czone-store/internal/logger"

	"go.uber.org/zap"
)

// Repository is the account store: the in-memory user list mirrored to disk.
type Repository interface {
	Load(ctx context.Context) error
	SaveAll(ctx context.Context) error
	Add(ctx context.Context, u *User) error
	UsernameExists(username string) bool
	FindByUsername(username string) (*User, bool)
	Users() []*User
	NextID() int
}

// FileRepository keeps accounts in a line-oriented text file and rewrites the
// whole file on every mutation.
type FileRepository struct {
	path  string
	users []*User

	// unreadable is set when the last Load failed; the file on disk is then
	// never overwritten.
	unreadable bool
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Path() string {
	return r.path
}

// Load replaces the in-memory list with the file contents. A missing file is an
// empty store. Malformed lines are logged and skipped. If the file cannot be
// read the store is left empty, further saves are refused and the error is
// returned.
func (r *FileRepository) Load(ctx context.Context) error {
	log := logger.FromCtx(ctx).With(zap.String("file", r.path))
	r.users = nil
	r.unreadable = false

	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info("account file not found, starting empty")
		return nil
	}
	if err != nil {
		r.unreadable = true
		log.Error("failed to open account file", zap.Error(err))
		return fmt.Errorf("open account file: %w", err)
	}
	defer f.Close()

	var users []*User
	reader := bufio.NewReader(f)
	lineNo := 0
	skipped := 0
	for {
		line, readErr := reader.ReadString('\n')
		if len(line) > 0 {
			lineNo++
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if line != "" {
				u, err := DecodeRecord(line)
				if err != nil {
					skipped++
					log.Warn("skipping malformed account record", zap.Int("line", lineNo), zap.Error(err))
				} else {
					users = append(users, u)
				}
			}
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			r.unreadable = true
			log.Error("failed to read account file", zap.Error(readErr))
			return fmt.Errorf("read account file: %w", readErr)
		}
	}

	r.users = users
	log.Info("accounts loaded", zap.Int("users", len(users)), zap.Int("skipped", skipped))
	return nil
}

// SaveAll rewrites the file from the in-memory list. The data goes to a temp
// file in the same directory which is then renamed over the target.
func (r *FileRepository) SaveAll(ctx context.Context) error {
	log := logger.FromCtx(ctx).With(zap.String("file", r.path))

	if r.unreadable {
		log.Error("refusing to overwrite unreadable account file")
		return ErrAccountFileUnreadable
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		log.Error("failed to create temp account file", zap.Error(err))
		return fmt.Errorf("save accounts: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	w := bufio.NewWriter(tmp)
	for _, u := range r.users {
		if _, err := w.WriteString(EncodeRecord(u) + "\n"); err != nil {
			cleanup()
			return fmt.Errorf("save accounts: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		cleanup()
		return fmt.Errorf("save accounts: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("save accounts: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("save accounts: %w", err)
	}
	mode := fs.FileMode(0o644)
	if fi, err := os.Stat(r.path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("save accounts: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		_ = os.Remove(tmpName)
		log.Error("failed to replace account file", zap.Error(err))
		return fmt.Errorf("save accounts: %w", err)
	}

	log.Debug("accounts saved", zap.Int("users", len(r.users)))
	return nil
}

// Add appends u and rewrites the file. On a failed write u is dropped again so
// memory and disk agree.
func (r *FileRepository) Add(ctx context.Context, u *User) error {
	r.users = append(r.users, u)
	if err := r.SaveAll(ctx); err != nil {
		r.users = r.users[:len(r.users)-1]
		return err
	}
	return nil
}

func (r *FileRepository) UsernameExists(username string) bool {
	_, ok := r.FindByUsername(username)
	return ok
}

// FindByUsername returns the first user with the given username.
func (r *FileRepository) FindByUsername(username string) (*User, bool) {
	for _, u := range r.users {
		if u.Username == username {
			return u, true
		}
	}
	return nil, false
}

func (r *FileRepository) Users() []*User {
	out := make([]*User, len(r.users))
	copy(out, r.users)
	return out
}

// NextID is one past the highest user id.
func (r *FileRepository) NextID() int {
	max := 0
	for _, u := range r.users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}
