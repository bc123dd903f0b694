package auth

import (
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

const RoleOperator = "operator"

var (
	ErrOperatorExists     = errors.New("operator already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Operator struct {
	Name string
	Hash []byte
	Role string
}

// OperatorStore holds the accounts allowed to change stock. It is filled
// from configuration at startup.
type OperatorStore struct {
	mu     sync.RWMutex
	byName map[string]Operator
}

func NewOperatorStore() *OperatorStore {
	return &OperatorStore{byName: make(map[string]Operator)}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (s *OperatorStore) Add(name, password, role string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.AddHash(name, hash, role)
}

// AddHash registers an operator whose bcrypt hash was produced elsewhere.
func (s *OperatorStore) AddHash(name string, hash []byte, role string) error {
	if _, err := bcrypt.Cost(hash); err != nil {
		return err
	}
	name = normalizeName(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[name]; ok {
		return ErrOperatorExists
	}
	s.byName[name] = Operator{Name: name, Hash: hash, Role: role}
	return nil
}

func (s *OperatorStore) Verify(name, password string) (Operator, error) {
	name = normalizeName(name)

	s.mu.RLock()
	op, ok := s.byName[name]
	s.mu.RUnlock()

	if !ok {
		return Operator{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(op.Hash, []byte(password)); err != nil {
		return Operator{}, ErrInvalidCredentials
	}
	return op, nil
}
