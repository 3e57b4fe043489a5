package contact_test

import (
	"testing"

	"flowerdelivery/internal/core/domain/model/contact"
	"flowerdelivery/internal/core/domain/model/kernel"
	"flowerdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGardenBreeze(t *testing.T) *contact.Contact {
	t.Helper()
	c, err := contact.NewContactFromInfo(kernel.NewUUID(), contact.Info{
		BusinessName: "새 가든브리즈",
		Phone:        "01023041022",
		Address:      "수원시 영통구 대학로101",
		Note:         "드림스퀘어1층108호",
	})
	require.NoError(t, err)
	return c
}

func TestNewContact(t *testing.T) {
	t.Run("normalizes the phone list", func(t *testing.T) {
		c, err := contact.NewContact(kernel.NewUUID(), " 새 그로브블룸 ",
			[]string{"", "010-7739-8340", " 010-7739-8340 ", "02-111-2222", "031-333-4444", "032-555-6666"},
			"김포시 초당로61번길17", "104호")

		require.NoError(t, err)
		assert.Equal(t, "새 그로브블룸", c.BusinessName())
		assert.Equal(t, []string{"010-7739-8340", "02-111-2222", "031-333-4444"}, c.Phones())
		assert.Equal(t, "010-7739-8340", c.PrimaryPhone())
	})

	t.Run("requires a business name", func(t *testing.T) {
		_, err := contact.NewContact(kernel.NewUUID(), "  ", nil, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires an id", func(t *testing.T) {
		_, err := contact.NewContact(kernel.UUID{}, "새 007천사", nil, "", "")
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("blank delivery phone gives an empty list", func(t *testing.T) {
		c, err := contact.NewContactFromInfo(kernel.NewUUID(), contact.Info{BusinessName: "새 518꽃집(인천가족공원)"})
		require.NoError(t, err)
		assert.Empty(t, c.Phones())
		assert.Equal(t, "", c.PrimaryPhone())
	})

	t.Run("phones are copied out", func(t *testing.T) {
		c := newGardenBreeze(t)
		phones := c.Phones()
		phones[0] = "tampered"
		assert.Equal(t, "01023041022", c.PrimaryPhone())
	})
}

func TestContact_Absorb(t *testing.T) {
	t.Run("unchanged info is a no-op", func(t *testing.T) {
		c := newGardenBreeze(t)

		changed := c.Absorb(contact.Info{
			BusinessName: "새 가든브리즈",
			Phone:        "01023041022",
			Address:      "수원시 영통구 대학로101",
			Note:         "드림스퀘어1층108호",
		})

		assert.False(t, changed)
		assert.Equal(t, []string{"01023041022"}, c.Phones())
	})

	t.Run("known older phone with same address is a no-op", func(t *testing.T) {
		c, err := contact.NewContact(kernel.NewUUID(), "새 MSS플라워", []string{"010-1", "010-2"}, "용인시", "")
		require.NoError(t, err)

		assert.False(t, c.Absorb(contact.Info{Phone: "010-2", Address: "용인시"}))
		assert.Equal(t, []string{"010-1", "010-2"}, c.Phones())
	})

	t.Run("new phones are prepended and capped at three", func(t *testing.T) {
		c := newGardenBreeze(t)
		base := contact.Info{Address: c.Address(), Note: c.Note()}

		for _, phone := range []string{"010-0000-0002", "010-0000-0003", "010-0000-0004"} {
			info := base
			info.Phone = phone
			assert.True(t, c.Absorb(info))
		}

		assert.Equal(t, []string{"010-0000-0004", "010-0000-0003", "010-0000-0002"}, c.Phones())
		assert.Len(t, c.Phones(), contact.MaxPhones)
	})

	t.Run("address and note are overwritten", func(t *testing.T) {
		c := newGardenBreeze(t)

		changed := c.Absorb(contact.Info{Phone: "", Address: "수원시 팔달구 효원로1", Note: ""})

		assert.True(t, changed)
		assert.Equal(t, "수원시 팔달구 효원로1", c.Address())
		assert.Equal(t, "", c.Note())
		assert.Equal(t, []string{"01023041022"}, c.Phones())
	})
}

func TestContact_Update(t *testing.T) {
	c := newGardenBreeze(t)

	require.NoError(t, c.Update("새 가든브리즈2", []string{"010-1", "", "010-2"}, "주소", "메모"))
	assert.Equal(t, "새 가든브리즈2", c.BusinessName())
	assert.Equal(t, []string{"010-1", "010-2"}, c.Phones())

	require.ErrorIs(t, c.Update("", nil, "", ""), errs.ErrValueIsRequired)
	assert.Equal(t, "새 가든브리즈2", c.BusinessName())
}

func TestContact_MatchesName(t *testing.T) {
	c, err := contact.NewContact(kernel.NewUUID(), "새 MSS플라워", nil, "", "")
	require.NoError(t, err)

	assert.True(t, c.MatchesName("mss"))
	assert.True(t, c.MatchesName("플라워"))
	assert.True(t, c.MatchesName(""))
	assert.False(t, c.MatchesName("가든"))
}

func TestNameMatches(t *testing.T) {
	assert.True(t, contact.NameMatches("Rose Garden", "GARDEN"))
	assert.True(t, contact.NameMatches("Rose Garden", ""))
	assert.False(t, contact.NameMatches("", "rose"))
}
