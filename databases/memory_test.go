package databases_test

import (
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwandapathways/pathways-api/databases"
	"github.com/rwandapathways/pathways-api/models"
)

func newSeededStore() *databases.MemoryStore {
	return databases.NewMemoryStore(0).Seed()
}

func TestMemoryInstitutionDatabase_FindOne(t *testing.T) {
	db := databases.NewMemoryInstitutionDatabase(newSeededStore())

	inst, err := db.FindOne(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "University of Rwanda", inst.Name)
	assert.Len(t, inst.Programs, 3)

	inst, err = db.FindOne(context.Background(), "does-not-exist")
	assert.Nil(t, inst)
	assert.ErrorIs(t, err, databases.ErrNotFound)
}

func TestMemoryInstitutionDatabase_ReadsAreCopies(t *testing.T) {
	db := databases.NewMemoryInstitutionDatabase(newSeededStore())

	inst, err := db.FindOne(context.Background(), "1")
	require.NoError(t, err)
	inst.Name = "changed"
	inst.Programs[0].Name = "changed"

	again, err := db.FindOne(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "University of Rwanda", again.Name)
	assert.Equal(t, "Computer Science", again.Programs[0].Name)
}

func TestMemoryInstitutionDatabase_Find(t *testing.T) {
	db := databases.NewMemoryInstitutionDatabase(newSeededStore())

	insts, err := db.Find(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"},
		lo.Map(insts, func(i models.Institution, _ int) string { return i.ID }))
}

func TestMemoryInstitutionDatabase_Filter(t *testing.T) {
	db := databases.NewMemoryInstitutionDatabase(newSeededStore())

	insts, err := db.Filter(context.Background(), func(i models.Institution) bool {
		return i.Type == models.TypeUniversity
	})
	require.NoError(t, err)
	assert.Len(t, insts, 3)

	insts, err = db.Filter(context.Background(), func(models.Institution) bool { return false })
	require.NoError(t, err)
	assert.NotNil(t, insts)
	assert.Empty(t, insts)
}

func TestMemoryInstitutionDatabase_InsertOne(t *testing.T) {
	db := databases.NewMemoryInstitutionDatabase(newSeededStore())

	created, err := db.InsertOne(context.Background(), models.Institution{
		Name:        "Carnegie Mellon University Africa",
		Type:        models.TypeUniversity,
		Location:    "Kigali, Rwanda",
		Description: "Graduate engineering programs.",
		Programs: []models.Program{
			{Name: "Information Technology", Level: models.LevelMasters, Duration: "2 years", Description: "MSIT"},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.Programs[0].ID)

	found, err := db.FindOne(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	insts, err := db.Find(context.Background())
	require.NoError(t, err)
	assert.Len(t, insts, 6)
}

func TestMemoryInstitutionDatabase_InsertAfterDeleteGetsFreshID(t *testing.T) {
	db := databases.NewMemoryInstitutionDatabase(newSeededStore())
	ctx := context.Background()

	require.NoError(t, db.DeleteOne(ctx, "2"))
	created, err := db.InsertOne(ctx, models.Institution{Name: "New", Type: models.TypeCollege, Location: "Huye", Description: "d"})
	require.NoError(t, err)

	insts, err := db.Find(ctx)
	require.NoError(t, err)
	ids := lo.Map(insts, func(i models.Institution, _ int) string { return i.ID })
	assert.Len(t, lo.Uniq(ids), len(ids))
	assert.Contains(t, ids, created.ID)
}

func TestMemoryInstitutionDatabase_UpdateOne(t *testing.T) {
	db := databases.NewMemoryInstitutionDatabase(newSeededStore())
	ctx := context.Background()

	updated, err := db.UpdateOne(ctx, "4", models.InstitutionPatch{
		Name:     lo.ToPtr("Kepler College"),
		Location: lo.ToPtr("Kigali"),
	})
	require.NoError(t, err)
	assert.Equal(t, "4", updated.ID)
	assert.Equal(t, "Kepler College", updated.Name)
	assert.Equal(t, "Kigali", updated.Location)
	assert.Equal(t, models.TypeCollege, updated.Type)
	assert.Len(t, updated.Programs, 1)

	_, err = db.UpdateOne(ctx, "missing", models.InstitutionPatch{Name: lo.ToPtr("x")})
	assert.ErrorIs(t, err, databases.ErrNotFound)
}

func TestMemoryInstitutionDatabase_DeleteOne(t *testing.T) {
	db := databases.NewMemoryInstitutionDatabase(newSeededStore())
	ctx := context.Background()

	require.NoError(t, db.DeleteOne(ctx, "3"))

	_, err := db.FindOne(ctx, "3")
	assert.ErrorIs(t, err, databases.ErrNotFound)

	assert.ErrorIs(t, db.DeleteOne(ctx, "3"), databases.ErrNotFound)
}

func TestMemoryUserDatabase_FindByEmail(t *testing.T) {
	db := databases.NewMemoryUserDatabase(newSeededStore())

	user, err := db.FindByEmail(context.Background(), " Student@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "2", user.ID)

	_, err = db.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, databases.ErrNotFound)
}

func TestMemoryUserDatabase_InsertOne(t *testing.T) {
	db := databases.NewMemoryUserDatabase(newSeededStore())
	ctx := context.Background()

	created, err := db.InsertOne(ctx, models.User{Email: "New@Example.com", Name: "New Student", Role: models.RoleStudent})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "new@example.com", created.Email)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = db.InsertOne(ctx, models.User{Email: "new@example.com", Name: "Again", Role: models.RoleStudent})
	assert.ErrorIs(t, err, databases.ErrDuplicateEmail)

	users, err := db.Find(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 5)
}

func TestMemoryUserDatabase_UpdateOne(t *testing.T) {
	db := databases.NewMemoryUserDatabase(newSeededStore())

	updated, err := db.UpdateOne(context.Background(), "3", models.UserPatch{Bio: lo.ToPtr("Now at ALU")})
	require.NoError(t, err)
	assert.Equal(t, "Now at ALU", updated.Bio)
	assert.Equal(t, "Dr. Alice Mutoni", updated.Name)

	_, err = db.UpdateOne(context.Background(), "99", models.UserPatch{})
	assert.ErrorIs(t, err, databases.ErrNotFound)
}

func TestMemoryMessageDatabase_FindByUser(t *testing.T) {
	db := databases.NewMemoryMessageDatabase(newSeededStore())

	msgs, err := db.FindByUser(context.Background(), "2")
	require.NoError(t, err)
	assert.Len(t, msgs, 3)

	msgs, err = db.FindByUser(context.Background(), "4")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestMemoryMessageDatabase_InsertAndMarkRead(t *testing.T) {
	db := databases.NewMemoryMessageDatabase(newSeededStore())
	ctx := context.Background()

	sent, err := db.InsertOne(ctx, models.Message{SenderID: "2", ReceiverID: "3", Content: "Thanks!", Timestamp: time.Now()})
	require.NoError(t, err)
	assert.NotEmpty(t, sent.ID)

	n, err := db.MarkRead(ctx, "2", "3")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	unread, err := db.Filter(ctx, func(m models.Message) bool { return !m.Read })
	require.NoError(t, err)
	assert.Empty(t, unread)

	n, err = db.MarkRead(ctx, "2", "3")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMemoryStore_LatencyHonoursContext(t *testing.T) {
	store := databases.NewMemoryStore(100).Seed()
	db := databases.NewMemoryInstitutionDatabase(store)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := db.Find(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestMemoryStore_SimulatedLatency(t *testing.T) {
	store := databases.NewMemoryStore(0.1).Seed()
	db := databases.NewMemoryUserDatabase(store)

	start := time.Now()
	_, err := db.FindOne(context.Background(), "1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestMemoryStore_AuthLatency(t *testing.T) {
	store := databases.NewMemoryStore(0.1).Seed()
	db := databases.NewMemoryUserDatabase(store)
	ctx := context.Background()

	start := time.Now()
	_, err := db.FindByEmail(ctx, "student@example.com")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 70*time.Millisecond)

	start = time.Now()
	_, err = db.InsertOne(ctx, models.User{Email: "slow@example.com", Name: "Slow", Role: models.RoleStudent})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 70*time.Millisecond)
}
