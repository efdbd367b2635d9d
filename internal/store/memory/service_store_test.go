package memory

import (
	"context"
	"testing"

	"github.com/ridesync/ridesync/internal/store"
	"github.com/stretchr/testify/require"
)

func TestNewServiceStore(t *testing.T) {
	st := NewServiceStore()
	require.NotNil(t, st)
}

func TestServiceStore_Create(t *testing.T) {
	st := NewServiceStore()
	ctx := context.Background()

	created, err := st.Create(ctx, &store.Service{
		ServiceName:   "Engine diagnostics",
		Price:         120,
		ProviderEmail: "p@example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Engine diagnostics", created.ServiceName)

	got, err := st.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestServiceStore_Get(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		st := NewServiceStore()

		_, err := st.Get(context.Background(), "missing")
		require.ErrorIs(t, err, store.ErrServiceNotFound)
	})

	t.Run("returned copy does not alias the stored document", func(t *testing.T) {
		st := NewServiceStore()
		ctx := context.Background()

		created, err := st.Create(ctx, &store.Service{ServiceName: "Tyre change"})
		require.NoError(t, err)

		got, err := st.Get(ctx, created.ID)
		require.NoError(t, err)
		got.ServiceName = "mutated"

		again, err := st.Get(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "Tyre change", again.ServiceName)
	})
}

func TestServiceStore_ListByProvider(t *testing.T) {
	st := NewServiceStore()
	ctx := context.Background()

	for _, svc := range []*store.Service{
		{ServiceName: "Oil change", ProviderEmail: "p@example.com"},
		{ServiceName: "Car wash", ProviderEmail: "other@example.com"},
		{ServiceName: "Brake check", ProviderEmail: "p@example.com"},
	} {
		_, err := st.Create(ctx, svc)
		require.NoError(t, err)
	}

	all, err := st.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	mine, err := st.ListByProvider(ctx, "p@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Equal(t, "Oil change", mine[0].ServiceName)
	require.Equal(t, "Brake check", mine[1].ServiceName)

	none, err := st.ListByProvider(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestServiceStore_Update(t *testing.T) {
	st := NewServiceStore()
	ctx := context.Background()

	created, err := st.Create(ctx, &store.Service{ServiceName: "Oil change", Price: 40})
	require.NoError(t, err)

	err = st.Update(ctx, created.ID, &store.Service{ServiceName: "Oil change", Price: 55})
	require.NoError(t, err)

	got, err := st.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, float64(55), got.Price)
	require.Equal(t, created.ID, got.ID)

	err = st.Update(ctx, "missing", &store.Service{})
	require.ErrorIs(t, err, store.ErrServiceNotFound)
}

func TestServiceStore_Delete(t *testing.T) {
	st := NewServiceStore()
	ctx := context.Background()

	created, err := st.Create(ctx, &store.Service{ServiceName: "Oil change"})
	require.NoError(t, err)

	err = st.Delete(ctx, created.ID)
	require.NoError(t, err)

	_, err = st.Get(ctx, created.ID)
	require.ErrorIs(t, err, store.ErrServiceNotFound)

	err = st.Delete(ctx, created.ID)
	require.ErrorIs(t, err, store.ErrServiceNotFound)
}
