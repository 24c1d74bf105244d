package repository

import (
	"testing"

	"sheet-music-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// GroupRepositoryTestSuite tests the GroupRepository
type GroupRepositoryTestSuite struct {
	suite.Suite
	db        *gorm.DB
	repo      *GroupRepository
	musicRepo *SheetMusicRepository
	factories *testutils.FactorySet
}

// SetupTest runs before each test
func (suite *GroupRepositoryTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())
	suite.repo = NewGroupRepository(suite.db)
	suite.musicRepo = NewSheetMusicRepository(suite.db)
	suite.factories = testutils.NewFactorySet()
}

// TestCreate tests creating a new group
func (suite *GroupRepositoryTestSuite) TestCreate() {
	group := suite.factories.Group.WithName("Coro Norte")

	err := suite.repo.Create(group)

	suite.NoError(err)
	suite.NotZero(group.ID)
	suite.NotZero(group.CreatedAt)
	suite.Require().NotNil(group.Slug)
	suite.Equal("coro-norte", *group.Slug)
}

// TestCreateDuplicateName tests the unique index on name
func (suite *GroupRepositoryTestSuite) TestCreateDuplicateName() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Group.WithName("Coro Norte")))

	err := suite.repo.Create(suite.factories.Group.WithName("Coro Norte"))

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestCreateDuplicateDerivedSlug tests that differing names with the same slug collide
func (suite *GroupRepositoryTestSuite) TestCreateDuplicateDerivedSlug() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Group.WithName("Coro Norte")))

	err := suite.repo.Create(suite.factories.Group.WithName("coro  norte!"))

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByID tests retrieving a group by ID
func (suite *GroupRepositoryTestSuite) TestGetByID() {
	group := suite.factories.Group.Create()
	suite.Require().NoError(suite.repo.Create(group))

	retrieved, err := suite.repo.GetByID(group.ID)

	suite.NoError(err)
	suite.Equal(group.Name, retrieved.Name)
	suite.Equal(*group.Slug, *retrieved.Slug)
}

// TestGetByIDNotFound tests retrieving a non-existent group
func (suite *GroupRepositoryTestSuite) TestGetByIDNotFound() {
	group, err := suite.repo.GetByID(4242)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(group)
}

// TestGetBySlugAndName tests the alternative lookups
func (suite *GroupRepositoryTestSuite) TestGetBySlugAndName() {
	group := suite.factories.Group.WithName("Banda Sur")
	suite.Require().NoError(suite.repo.Create(group))

	bySlug, err := suite.repo.GetBySlug("banda-sur")
	suite.NoError(err)
	suite.Equal(group.ID, bySlug.ID)

	byName, err := suite.repo.GetByName("Banda Sur")
	suite.NoError(err)
	suite.Equal(group.ID, byName.ID)

	_, err = suite.repo.GetBySlug("missing")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListOrderedByName tests that groups come back sorted by name
func (suite *GroupRepositoryTestSuite) TestListOrderedByName() {
	for _, name := range []string{"Zarzuela", "Aurora", "Miserere"} {
		suite.Require().NoError(suite.repo.Create(suite.factories.Group.WithName(name)))
	}

	groups, err := suite.repo.List()

	suite.NoError(err)
	suite.Require().Len(groups, 3)
	suite.Equal("Aurora", groups[0].Name)
	suite.Equal("Miserere", groups[1].Name)
	suite.Equal("Zarzuela", groups[2].Name)
}

// TestUpdateKeepsSlug tests that renaming does not regenerate the slug
func (suite *GroupRepositoryTestSuite) TestUpdateKeepsSlug() {
	group := suite.factories.Group.WithName("Coro Norte")
	suite.Require().NoError(suite.repo.Create(group))

	group.Name = "Coro del Norte"
	suite.Require().NoError(suite.repo.Update(group))

	retrieved, err := suite.repo.GetByID(group.ID)
	suite.NoError(err)
	suite.Equal("Coro del Norte", retrieved.Name)
	suite.Equal("coro-norte", *retrieved.Slug)
}

// TestUpdateFillsMissingSlug tests that a cleared slug is derived again on save
func (suite *GroupRepositoryTestSuite) TestUpdateFillsMissingSlug() {
	group := suite.factories.Group.WithName("Coro Norte")
	suite.Require().NoError(suite.repo.Create(group))

	group.Name = "Coro Sur"
	group.Slug = nil
	suite.Require().NoError(suite.repo.Update(group))

	retrieved, err := suite.repo.GetByID(group.ID)
	suite.NoError(err)
	suite.Equal("coro-sur", *retrieved.Slug)
}

// TestDeleteCascades tests that deleting a group removes its sheet music
func (suite *GroupRepositoryTestSuite) TestDeleteCascades() {
	group := suite.factories.Group.Create()
	other := suite.factories.Group.Create()
	suite.Require().NoError(suite.repo.Create(group))
	suite.Require().NoError(suite.repo.Create(other))
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.musicRepo.Create(suite.factories.SheetMusic.WithGroup(group.ID)))
	}
	suite.Require().NoError(suite.musicRepo.Create(suite.factories.SheetMusic.WithGroup(other.ID)))

	err := suite.repo.Delete(group.ID)

	suite.NoError(err)
	_, err = suite.repo.GetByID(group.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	count, err := suite.musicRepo.CountByGroupID(group.ID)
	suite.NoError(err)
	suite.Zero(count)

	count, err = suite.musicRepo.CountByGroupID(other.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestDeleteNotFound tests deleting a non-existent group
func (suite *GroupRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(4242)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGroupRepositoryTestSuite runs the test suite
func TestGroupRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GroupRepositoryTestSuite))
}
