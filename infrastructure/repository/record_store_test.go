package repository

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/drop-analytics-api/internal/domain"
)

func replaceWith(record domain.PeriodRecord) PeriodRecordUpdate {
	return func(domain.PeriodRecord) (domain.PeriodRecord, error) {
		return record, nil
	}
}

func TestRecordStore_SnapshotIsIsolated(t *testing.T) {
	store := NewRecordStore()
	store.Load(domain.SampleSnapshot())

	snapshot := store.Snapshot()
	snapshot.Drops[0].Name = "alterado"
	snapshot.Drops[0].Products[0].MonthlyData["2024-11"] = domain.PeriodRecord{Sold: 999}
	snapshot.Expenses["2024-11"] = domain.ExpensePeriod{}

	fresh := store.Snapshot()
	assert.Equal(t, "Launch Collection", fresh.Drops[0].Name)
	assert.Equal(t, 15, fresh.Drops[0].Products[0].MonthlyData["2024-11"].Sold)
	assert.InDelta(t, 30000.0, fresh.Expenses["2024-11"].AdSpend, 0.001)
}

func TestRecordStore_VersionIncreasesOnEveryWrite(t *testing.T) {
	store := NewRecordStore()
	assert.Equal(t, uint64(0), store.Version())

	require.NoError(t, store.SaveDrop(&domain.Drop{ID: "d1", Name: "Drop 1"}))
	assert.Equal(t, uint64(1), store.Version())

	require.NoError(t, store.SaveProduct("d1", &domain.Product{ID: "p1", Price: 10, InitialStock: 5}))
	assert.Equal(t, uint64(2), store.Version())

	_, err := store.UpdatePeriodRecord("d1", "p1", "2024-01", replaceWith(domain.PeriodRecord{Sold: 1}))
	require.NoError(t, err)
	assert.Equal(t, uint64(3), store.Version())

	require.NoError(t, store.UpsertExpenses("2024-01", domain.ExpensePeriod{AdSpend: 10}))
	assert.Equal(t, uint64(4), store.Version())
	assert.Equal(t, uint64(4), store.Snapshot().Version)
}

func TestRecordStore_Upserts(t *testing.T) {
	store := NewRecordStore()
	require.NoError(t, store.SaveDrop(&domain.Drop{ID: "d1", Name: "Drop 1"}))
	require.NoError(t, store.SaveProduct("d1", &domain.Product{ID: "p1", Name: "Tee"}))

	_, err := store.UpdatePeriodRecord("d1", "p1", "2024-01", replaceWith(domain.PeriodRecord{Sold: 1}))
	require.NoError(t, err)
	_, err = store.UpdatePeriodRecord("d1", "p1", "2024-01", replaceWith(domain.PeriodRecord{Sold: 7}))
	require.NoError(t, err)

	require.NoError(t, store.SaveProduct("d1", &domain.Product{ID: "p1", Name: "Tee v2"}))
	require.NoError(t, store.SaveDrop(&domain.Drop{ID: "d1", Name: "Drop renomeado", Products: []*domain.Product{{ID: "p1", Name: "Tee v2"}}}))

	drop, err := store.GetDrop("d1")
	require.NoError(t, err)
	require.NotNil(t, drop)
	assert.Equal(t, "Drop renomeado", drop.Name)
	require.Len(t, drop.Products, 1)
	assert.Equal(t, "Tee v2", drop.Products[0].Name)
}

func TestRecordStore_Errors(t *testing.T) {
	store := NewRecordStore()
	require.NoError(t, store.SaveDrop(&domain.Drop{ID: "d1"}))

	drop, err := store.GetDrop("nao-existe")
	assert.NoError(t, err)
	assert.Nil(t, drop)

	assert.ErrorIs(t, store.SaveProduct("nao-existe", &domain.Product{ID: "p1"}), ErrDropNotFound)
	_, err = store.UpdatePeriodRecord("nao-existe", "p1", "2024-01", replaceWith(domain.PeriodRecord{}))
	assert.ErrorIs(t, err, ErrDropNotFound)
	_, err = store.UpdatePeriodRecord("d1", "p1", "2024-01", replaceWith(domain.PeriodRecord{}))
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Error(t, store.SaveDrop(&domain.Drop{}))
	assert.Error(t, store.SaveProduct("d1", nil))
	assert.Equal(t, uint64(1), store.Version())
}

func TestRecordStore_ConcurrentWrites(t *testing.T) {
	store := NewRecordStore()
	require.NoError(t, store.SaveDrop(&domain.Drop{ID: "d1"}))
	require.NoError(t, store.SaveProduct("d1", &domain.Product{ID: "p1"}))

	var wg sync.WaitGroup
	periods := []string{"2024-01", "2024-02", "2024-03", "2024-04", "2024-05"}
	for _, period := range periods {
		wg.Add(1)
		go func(period string) {
			defer wg.Done()
			_, _ = store.UpdatePeriodRecord("d1", "p1", period, replaceWith(domain.PeriodRecord{Sold: 1}))
			_ = store.Snapshot()
		}(period)
	}
	wg.Wait()

	snapshot := store.Snapshot()
	assert.Len(t, snapshot.Drops[0].Products[0].MonthlyData, len(periods))
	assert.Equal(t, uint64(2+len(periods)), store.Version())
}

func TestRecordStore_UpdatePeriodRecord(t *testing.T) {
	store := NewRecordStore()
	require.NoError(t, store.SaveDrop(&domain.Drop{ID: "d1"}))
	require.NoError(t, store.SaveProduct("d1", &domain.Product{ID: "p1"}))

	t.Run("Período novo começa zerado", func(t *testing.T) {
		stored, err := store.UpdatePeriodRecord("d1", "p1", "2024-11", func(current domain.PeriodRecord) (domain.PeriodRecord, error) {
			assert.Equal(t, domain.PeriodRecord{}, current)
			current.Sold = 15
			current.NewCustomers = 12
			return current, nil
		})
		require.NoError(t, err)
		assert.Equal(t, domain.PeriodRecord{Sold: 15, NewCustomers: 12}, stored)
	})

	t.Run("Atualização recebe o registro gravado", func(t *testing.T) {
		stored, err := store.UpdatePeriodRecord("d1", "p1", "2024-11", func(current domain.PeriodRecord) (domain.PeriodRecord, error) {
			current.Returned = 2
			return current, nil
		})
		require.NoError(t, err)
		assert.Equal(t, domain.PeriodRecord{Sold: 15, Returned: 2, NewCustomers: 12}, stored)
	})

	t.Run("Erro na atualização não grava", func(t *testing.T) {
		version := store.Version()
		failure := errors.New("recusado")

		_, err := store.UpdatePeriodRecord("d1", "p1", "2024-11", func(domain.PeriodRecord) (domain.PeriodRecord, error) {
			return domain.PeriodRecord{}, failure
		})
		assert.ErrorIs(t, err, failure)
		assert.Equal(t, version, store.Version())

		drop, err := store.GetDrop("d1")
		require.NoError(t, err)
		assert.Equal(t, 15, drop.Products[0].MonthlyData["2024-11"].Sold)
	})
}
