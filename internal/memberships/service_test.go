package memberships

import (
	"context"
	"testing"

	"vows-backend/internal/constants"
	"vows-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMembershipsTest(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Event{}, &domain.Membership{}))
	return &Service{DB: db}, db
}

func seedUser(t *testing.T, db *gorm.DB, fullname, email string) *domain.User {
	t.Helper()
	u := &domain.User{Fullname: fullname, Email: email, PasswordHash: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedEvent(t *testing.T, db *gorm.DB, owner *domain.User) *domain.Event {
	t.Helper()
	e := &domain.Event{Name: "Summer Wedding", CreatedBy: owner.UserID}
	require.NoError(t, db.Create(e).Error)
	return e
}

func TestFind_ReturnsNilWhenAbsent(t *testing.T) {
	svc, db := setupMembershipsTest(t)
	u := seedUser(t, db, "Test User", "a@test.com")
	e := seedEvent(t, db, u)

	m, err := svc.Find(context.Background(), u.UserID, e.EventID)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestCreate_AssignsDefaultRoleLabel(t *testing.T) {
	svc, db := setupMembershipsTest(t)
	u := seedUser(t, db, "Test User", "a@test.com")
	e := seedEvent(t, db, u)

	m, err := svc.Create(context.Background(), u.UserID, e.EventID, constants.Planner, "")
	require.NoError(t, err)
	assert.Equal(t, constants.Planner, m.Role)
	assert.Equal(t, constants.DefaultRoleLabel(constants.Planner), m.RoleLabel)

	found, err := svc.Find(context.Background(), u.UserID, e.EventID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, m.MembershipID, found.MembershipID)
}

func TestCreate_KeepsCustomRoleLabel(t *testing.T) {
	svc, db := setupMembershipsTest(t)
	u := seedUser(t, db, "Test User", "a@test.com")
	e := seedEvent(t, db, u)

	m, err := svc.Create(context.Background(), u.UserID, e.EventID, constants.Vendor, "Florist")
	require.NoError(t, err)
	assert.Equal(t, "Florist", m.RoleLabel)
}

func TestCreate_DuplicatePairConflicts(t *testing.T) {
	svc, db := setupMembershipsTest(t)
	u := seedUser(t, db, "Test User", "a@test.com")
	e := seedEvent(t, db, u)

	_, err := svc.Create(context.Background(), u.UserID, e.EventID, constants.Guest, "")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), u.UserID, e.EventID, constants.Planner, "")
	assert.ErrorIs(t, err, ErrAlreadyMember)

	var count int64
	require.NoError(t, db.Model(&domain.Membership{}).Where("user_id = ? AND event_id = ?", u.UserID, e.EventID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreate_SameUserAcrossEvents(t *testing.T) {
	svc, db := setupMembershipsTest(t)
	u := seedUser(t, db, "Test User", "a@test.com")
	e1 := seedEvent(t, db, u)
	e2 := seedEvent(t, db, u)

	_, err := svc.Create(context.Background(), u.UserID, e1.EventID, constants.Guest, "")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), u.UserID, e2.EventID, constants.Vendor, "")
	require.NoError(t, err)
}

func TestListEventMembers_RequiresMembership(t *testing.T) {
	svc, db := setupMembershipsTest(t)
	owner := seedUser(t, db, "Owner", "owner@test.com")
	outsider := seedUser(t, db, "Outsider", "outsider@test.com")
	e := seedEvent(t, db, owner)
	_, err := svc.Create(context.Background(), owner.UserID, e.EventID, constants.Owner, "")
	require.NoError(t, err)

	_, err = svc.ListEventMembers(context.Background(), outsider.UserID, e.EventID)
	assert.ErrorIs(t, err, ErrNotMember)
}

func TestListEventMembers_JoinsUserProfile(t *testing.T) {
	svc, db := setupMembershipsTest(t)
	owner := seedUser(t, db, "Ama Mensah", "owner@test.com")
	guest := seedUser(t, db, "Kofi Boateng", "guest@test.com")
	e := seedEvent(t, db, owner)
	_, err := svc.Create(context.Background(), owner.UserID, e.EventID, constants.Owner, "")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), guest.UserID, e.EventID, constants.Guest, "Groomsman")
	require.NoError(t, err)

	members, err := svc.ListEventMembers(context.Background(), owner.UserID, e.EventID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	byEmail := map[string]EventMember{}
	for _, m := range members {
		byEmail[m.Email] = m
	}
	assert.Equal(t, "Ama Mensah", byEmail["owner@test.com"].Fullname)
	assert.Equal(t, constants.Owner, byEmail["owner@test.com"].Role)
	assert.Equal(t, "Groomsman", byEmail["guest@test.com"].RoleLabel)
}
