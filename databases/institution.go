package databases

// go generate: mockery --name InstitutionDatabase

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/rwandapathways/pathways-api/models"
)

const institutionName = "institutions"

// InstitutionDatabase contains the methods to use with the institution collection
type InstitutionDatabase interface {
	FindOne(ctx context.Context, id string) (*models.Institution, error)
	Find(ctx context.Context) ([]models.Institution, error)
	Filter(ctx context.Context, match func(models.Institution) bool) ([]models.Institution, error)
	InsertOne(ctx context.Context, inst models.Institution) (*models.Institution, error)
	UpdateOne(ctx context.Context, id string, patch models.InstitutionPatch) (*models.Institution, error)
	DeleteOne(ctx context.Context, id string) error
}

type institutionDatabase struct {
	db DatabaseHelper
}

// NewInstitutionDatabase initializes a new instance of institution database with the provided db connection
func NewInstitutionDatabase(db DatabaseHelper) InstitutionDatabase {
	return &institutionDatabase{
		db: db,
	}
}

func (c *institutionDatabase) FindOne(ctx context.Context, id string) (*models.Institution, error) {
	inst := &models.Institution{}
	err := c.db.Collection(institutionName).FindOne(ctx, bson.M{"_id": id}).Decode(inst)
	if err != nil {
		return nil, err
	}
	return inst, nil
}

func (c *institutionDatabase) Find(ctx context.Context) ([]models.Institution, error) {
	var insts []models.Institution
	err := c.db.Collection(institutionName).Find(ctx, bson.M{}).Decode(&insts)
	if err != nil {
		return nil, err
	}
	return insts, nil
}

func (c *institutionDatabase) Filter(ctx context.Context, match func(models.Institution) bool) ([]models.Institution, error) {
	insts, err := c.Find(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(insts, func(i models.Institution, _ int) bool { return match(i) }), nil
}

func (c *institutionDatabase) InsertOne(ctx context.Context, inst models.Institution) (*models.Institution, error) {
	inst = prepareInstitution(inst, func() string { return uuid.New().String() })
	inst.ID = uuid.New().String()
	if _, err := c.db.Collection(institutionName).InsertOne(ctx, inst); err != nil {
		return nil, fmt.Errorf("failed to insert institution: %w", err)
	}
	return &inst, nil
}

func (c *institutionDatabase) UpdateOne(ctx context.Context, id string, patch models.InstitutionPatch) (*models.Institution, error) {
	current, err := c.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := prepareInstitution(patch.Apply(*current), func() string { return uuid.New().String() })
	matched, err := c.db.Collection(institutionName).ReplaceOne(ctx, bson.M{"_id": id}, updated)
	if err != nil {
		return nil, fmt.Errorf("failed to replace institution: %w", err)
	}
	if matched == 0 {
		return nil, ErrNotFound
	}
	return &updated, nil
}

func (c *institutionDatabase) DeleteOne(ctx context.Context, id string) error {
	deleted, err := c.db.Collection(institutionName).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete institution: %w", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

// prepareInstitution makes sure programs is a list and every program has an id
func prepareInstitution(inst models.Institution, newID func() string) models.Institution {
	if inst.Programs == nil {
		inst.Programs = []models.Program{}
	}
	for i := range inst.Programs {
		if inst.Programs[i].ID == "" {
			inst.Programs[i].ID = newID()
		}
	}
	return inst
}

type memoryInstitutionDatabase struct {
	s *MemoryStore
}

// NewMemoryInstitutionDatabase serves institutions out of the in-memory store
func NewMemoryInstitutionDatabase(s *MemoryStore) InstitutionDatabase {
	return &memoryInstitutionDatabase{s: s}
}

func (m *memoryInstitutionDatabase) FindOne(ctx context.Context, id string) (*models.Institution, error) {
	if err := m.s.wait(ctx, readDelay); err != nil {
		return nil, err
	}
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	idx := slices.IndexFunc(m.s.institutions, func(i models.Institution) bool { return i.ID == id })
	if idx == -1 {
		return nil, ErrNotFound
	}
	inst := m.s.institutions[idx].Clone()
	return &inst, nil
}

func (m *memoryInstitutionDatabase) Find(ctx context.Context) ([]models.Institution, error) {
	if err := m.s.wait(ctx, listDelay); err != nil {
		return nil, err
	}
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	return lo.Map(m.s.institutions, func(i models.Institution, _ int) models.Institution { return i.Clone() }), nil
}

func (m *memoryInstitutionDatabase) Filter(ctx context.Context, match func(models.Institution) bool) ([]models.Institution, error) {
	if err := m.s.wait(ctx, readDelay); err != nil {
		return nil, err
	}
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	out := []models.Institution{}
	for _, i := range m.s.institutions {
		if match(i) {
			out = append(out, i.Clone())
		}
	}
	return out, nil
}

func (m *memoryInstitutionDatabase) InsertOne(ctx context.Context, inst models.Institution) (*models.Institution, error) {
	if err := m.s.wait(ctx, writeDelay); err != nil {
		return nil, err
	}
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	inst = prepareInstitution(inst.Clone(), m.s.newID)
	inst.ID = m.s.newID()
	m.s.institutions = append(m.s.institutions, inst)
	out := inst.Clone()
	return &out, nil
}

func (m *memoryInstitutionDatabase) UpdateOne(ctx context.Context, id string, patch models.InstitutionPatch) (*models.Institution, error) {
	if err := m.s.wait(ctx, writeDelay); err != nil {
		return nil, err
	}
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	idx := slices.IndexFunc(m.s.institutions, func(i models.Institution) bool { return i.ID == id })
	if idx == -1 {
		return nil, ErrNotFound
	}
	m.s.institutions[idx] = prepareInstitution(patch.Apply(m.s.institutions[idx]), m.s.newID)
	out := m.s.institutions[idx].Clone()
	return &out, nil
}

func (m *memoryInstitutionDatabase) DeleteOne(ctx context.Context, id string) error {
	if err := m.s.wait(ctx, writeDelay); err != nil {
		return err
	}
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	idx := slices.IndexFunc(m.s.institutions, func(i models.Institution) bool { return i.ID == id })
	if idx == -1 {
		return ErrNotFound
	}
	m.s.institutions = slices.Delete(m.s.institutions, idx, idx+1)
	return nil
}
