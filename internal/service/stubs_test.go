package service

import (
	"context"
	"errors"

	"github.com/sibaq/festival-api/internal/domain"
	"github.com/sibaq/festival-api/internal/repository"
)

// In-memory repository stubs backing the service tests. Each keeps a plain
// slice and returns the repository sentinels the real implementations do.

type stubCandidateRepo struct {
	candidates []domain.Candidate
	findAllErr error
	createErr  error
	nextID     uint
}

func (s *stubCandidateRepo) Create(_ context.Context, candidate domain.Candidate) (domain.Candidate, error) {
	if s.createErr != nil {
		return domain.Candidate{}, s.createErr
	}

	s.nextID++
	candidate.ID = s.nextID
	s.candidates = append(s.candidates, candidate)

	return candidate, nil
}

func (s *stubCandidateRepo) FindAll(_ context.Context) ([]domain.Candidate, error) {
	if s.findAllErr != nil {
		return nil, s.findAllErr
	}

	return s.candidates, nil
}

func (s *stubCandidateRepo) FindByID(_ context.Context, id uint) (domain.Candidate, error) {
	for _, c := range s.candidates {
		if c.ID == id {
			return c, nil
		}
	}

	return domain.Candidate{}, repository.ErrCandidateNotFound
}

func (s *stubCandidateRepo) FindByCode(_ context.Context, code string) (domain.Candidate, error) {
	for _, c := range s.candidates {
		if c.Code == code {
			return c, nil
		}
	}

	return domain.Candidate{}, repository.ErrCandidateNotFound
}

func (s *stubCandidateRepo) Update(_ context.Context, candidate domain.Candidate) (domain.Candidate, error) {
	for i, c := range s.candidates {
		if c.ID == candidate.ID {
			s.candidates[i] = candidate
			return candidate, nil
		}
	}

	return domain.Candidate{}, repository.ErrCandidateNotFound
}

func (s *stubCandidateRepo) Delete(_ context.Context, id uint) error {
	for i, c := range s.candidates {
		if c.ID == id {
			s.candidates = append(s.candidates[:i], s.candidates[i+1:]...)
			return nil
		}
	}

	return repository.ErrCandidateNotFound
}

func (s *stubCandidateRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.candidates)), nil
}

type stubProgramRepo struct {
	programs []domain.Program
	nextID   uint
}

func (s *stubProgramRepo) Create(_ context.Context, program domain.Program) (domain.Program, error) {
	s.nextID++
	program.ID = s.nextID
	s.programs = append(s.programs, program)

	return program, nil
}

func (s *stubProgramRepo) FindAll(_ context.Context) ([]domain.Program, error) {
	return s.programs, nil
}

func (s *stubProgramRepo) FindByID(_ context.Context, id uint) (domain.Program, error) {
	for _, p := range s.programs {
		if p.ID == id {
			return p, nil
		}
	}

	return domain.Program{}, repository.ErrProgramNotFound
}

func (s *stubProgramRepo) Update(_ context.Context, program domain.Program) (domain.Program, error) {
	for i, p := range s.programs {
		if p.ID == program.ID {
			s.programs[i] = program
			return program, nil
		}
	}

	return domain.Program{}, repository.ErrProgramNotFound
}

func (s *stubProgramRepo) Delete(_ context.Context, id uint) error {
	for i, p := range s.programs {
		if p.ID == id {
			s.programs = append(s.programs[:i], s.programs[i+1:]...)
			return nil
		}
	}

	return repository.ErrProgramNotFound
}

func (s *stubProgramRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.programs)), nil
}

type stubDarsRepo struct {
	entries   []domain.DarsEntry
	createErr error
	nextID    uint
}

func (s *stubDarsRepo) Create(_ context.Context, entry domain.DarsEntry) (domain.DarsEntry, error) {
	if s.createErr != nil {
		return domain.DarsEntry{}, s.createErr
	}

	s.nextID++
	entry.ID = s.nextID
	s.entries = append(s.entries, entry)

	return entry, nil
}

func (s *stubDarsRepo) FindAll(_ context.Context) ([]domain.DarsEntry, error) {
	return s.entries, nil
}

func (s *stubDarsRepo) FindByID(_ context.Context, id uint) (domain.DarsEntry, error) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, nil
		}
	}

	return domain.DarsEntry{}, repository.ErrDarsNotFound
}

func (s *stubDarsRepo) FindByNameAndZone(_ context.Context, darsname, zone string) (domain.DarsEntry, error) {
	for _, e := range s.entries {
		if e.DarsName == darsname && e.Zone == zone {
			return e, nil
		}
	}

	return domain.DarsEntry{}, repository.ErrDarsNotFound
}

func (s *stubDarsRepo) Update(_ context.Context, entry domain.DarsEntry) (domain.DarsEntry, error) {
	for i, e := range s.entries {
		if e.ID == entry.ID {
			entry.DarsName = e.DarsName
			s.entries[i] = entry
			return entry, nil
		}
	}

	return domain.DarsEntry{}, repository.ErrDarsNotFound
}

func (s *stubDarsRepo) Delete(_ context.Context, id uint) error {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}

	return repository.ErrDarsNotFound
}

func (s *stubDarsRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.entries)), nil
}

type stubUserRepo struct {
	users []domain.User
}

func (s *stubUserRepo) FindByUsername(_ context.Context, username string) (domain.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}

	return domain.User{}, repository.ErrUserNotFound
}

var errStubUnavailable = errors.New("store unavailable")
