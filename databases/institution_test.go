package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/rwandapathways/pathways-api/databases"
	"github.com/rwandapathways/pathways-api/databases/mocks"
	"github.com/rwandapathways/pathways-api/models"
)

func TestInstitutionDatabase_FindOne(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	srHelper := &mocks.SingleResultHelper{}

	srHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*models.Institution)
		arg.ID = "1"
		arg.Name = "University of Rwanda"
	})
	collectionHelper.On("FindOne", context.Background(), bson.M{"_id": "1"}).Return(srHelper)
	dbHelper.On("Collection", "institutions").Return(collectionHelper)

	inst, err := databases.NewInstitutionDatabase(dbHelper).FindOne(context.Background(), "1")

	assert.NoError(t, err)
	assert.Equal(t, "University of Rwanda", inst.Name)
}

func TestInstitutionDatabase_Filter(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	crHelper := &mocks.CursorHelper{}

	crHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Institution)
		*arg = []models.Institution{
			{ID: "1", Type: models.TypeUniversity},
			{ID: "2", Type: models.TypeVocational},
		}
	})
	collectionHelper.On("Find", context.Background(), bson.M{}).Return(crHelper)
	dbHelper.On("Collection", "institutions").Return(collectionHelper)

	insts, err := databases.NewInstitutionDatabase(dbHelper).Filter(context.Background(), func(i models.Institution) bool {
		return i.Type == models.TypeVocational
	})

	assert.NoError(t, err)
	assert.Equal(t, []models.Institution{{ID: "2", Type: models.TypeVocational}}, insts)
}

func TestInstitutionDatabase_InsertOne(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("InsertOne", context.Background(), mock.AnythingOfType("models.Institution")).Return(nil, nil)
	dbHelper.On("Collection", "institutions").Return(collectionHelper)

	inst, err := databases.NewInstitutionDatabase(dbHelper).InsertOne(context.Background(), models.Institution{
		Name:     "Kepler",
		Programs: []models.Program{{Name: "Business"}},
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, inst.ID)
	assert.NotEmpty(t, inst.Programs[0].ID)
}

func TestInstitutionDatabase_InsertOneFails(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("InsertOne", context.Background(), mock.Anything).Return(nil, errors.New("mocked-error"))
	dbHelper.On("Collection", "institutions").Return(collectionHelper)

	inst, err := databases.NewInstitutionDatabase(dbHelper).InsertOne(context.Background(), models.Institution{Name: "Kepler"})

	assert.Nil(t, inst)
	assert.EqualError(t, err, "failed to insert institution: mocked-error")
}

func TestInstitutionDatabase_UpdateOne(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	srHelper := &mocks.SingleResultHelper{}

	srHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*models.Institution)
		*arg = models.Institution{ID: "4", Name: "Kepler", Type: models.TypeCollege}
	})
	collectionHelper.On("FindOne", context.Background(), bson.M{"_id": "4"}).Return(srHelper)
	collectionHelper.On("ReplaceOne", context.Background(), bson.M{"_id": "4"}, mock.AnythingOfType("models.Institution")).Return(int64(1), nil)
	dbHelper.On("Collection", "institutions").Return(collectionHelper)

	inst, err := databases.NewInstitutionDatabase(dbHelper).UpdateOne(context.Background(), "4",
		models.InstitutionPatch{Name: lo.ToPtr("Kepler College")})

	assert.NoError(t, err)
	assert.Equal(t, "4", inst.ID)
	assert.Equal(t, "Kepler College", inst.Name)
	assert.Equal(t, models.TypeCollege, inst.Type)
	assert.NotNil(t, inst.Programs)
}

func TestInstitutionDatabase_DeleteOne(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("DeleteOne", context.Background(), bson.M{"_id": "1"}).Return(int64(1), nil)
	collectionHelper.On("DeleteOne", context.Background(), bson.M{"_id": "missing"}).Return(int64(0), nil)
	dbHelper.On("Collection", "institutions").Return(collectionHelper)

	instDB := databases.NewInstitutionDatabase(dbHelper)

	assert.NoError(t, instDB.DeleteOne(context.Background(), "1"))
	assert.ErrorIs(t, instDB.DeleteOne(context.Background(), "missing"), databases.ErrNotFound)
}
