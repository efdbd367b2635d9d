package memory

import (
	"context"
	"testing"

	"github.com/ridesync/ridesync/internal/store"
	"github.com/stretchr/testify/require"
)

func TestBookingStore_Create(t *testing.T) {
	st := NewBookingStore()
	ctx := context.Background()

	created, err := st.Create(ctx, &store.Booking{
		ServiceName: "Oil change",
		UserEmail:   "c@example.com",
		Price:       40,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
}

func TestBookingStore_ListByUser(t *testing.T) {
	st := NewBookingStore()
	ctx := context.Background()

	for _, b := range []*store.Booking{
		{ServiceName: "Oil change", UserEmail: "c@example.com"},
		{ServiceName: "Car wash", UserEmail: "other@example.com"},
		{ServiceName: "Brake check", UserEmail: "c@example.com"},
	} {
		_, err := st.Create(ctx, b)
		require.NoError(t, err)
	}

	mine, err := st.ListByUser(ctx, "c@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Equal(t, "Oil change", mine[0].ServiceName)

	none, err := st.ListByUser(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestBookingStore_UpdateStatus(t *testing.T) {
	st := NewBookingStore()
	ctx := context.Background()

	created, err := st.Create(ctx, &store.Booking{UserEmail: "c@example.com"})
	require.NoError(t, err)

	err = st.UpdateStatus(ctx, created.ID, "confirmed")
	require.NoError(t, err)

	mine, err := st.ListByUser(ctx, "c@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "confirmed", mine[0].Status)

	err = st.UpdateStatus(ctx, "missing", "confirmed")
	require.ErrorIs(t, err, store.ErrBookingNotFound)
}

func TestBookingStore_Delete(t *testing.T) {
	st := NewBookingStore()
	ctx := context.Background()

	created, err := st.Create(ctx, &store.Booking{UserEmail: "c@example.com"})
	require.NoError(t, err)

	err = st.Delete(ctx, created.ID)
	require.NoError(t, err)

	err = st.Delete(ctx, created.ID)
	require.ErrorIs(t, err, store.ErrBookingNotFound)
}
