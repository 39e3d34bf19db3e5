package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeRecords(n int) []Record {
	records := make([]Record, n)
	for i := range records {
		records[i] = Record{ID: fmt.Sprintf("rec%014d", i+1)}
	}
	return records
}

func TestPaginateSlices(t *testing.T) {
	records := makeRecords(5)

	page := Paginate(records, 1, 2)
	assert.Len(t, page, 2)
	assert.Equal(t, records[0].ID, page[0].ID)

	page = Paginate(records, 2, 2)
	assert.Len(t, page, 2)
	assert.Equal(t, records[2].ID, page[0].ID)

	// Last partial page
	page = Paginate(records, 3, 2)
	assert.Len(t, page, 1)
	assert.Equal(t, records[4].ID, page[0].ID)
}

func TestPaginatePastEndIsEmpty(t *testing.T) {
	records := makeRecords(3)

	assert.Empty(t, Paginate(records, 4, 2))
	assert.Empty(t, Paginate(nil, 1, 10))
	assert.Empty(t, Paginate(records, 0, 2))
	assert.Empty(t, Paginate(records, 1, 0))
}

func TestIsRecordID(t *testing.T) {
	assert.True(t, IsRecordID("rec00000000000001"))
	assert.True(t, IsRecordID("recAbC123xYz45678"))
	assert.False(t, IsRecordID("SCUBA01"))
	assert.False(t, IsRecordID("rec123"))
	assert.False(t, IsRecordID(""))
}

func TestIsStoreError(t *testing.T) {
	err := &StoreError{Op: "select", Collection: "listings", Err: errors.New("boom")}

	assert.True(t, IsStoreError(err))
	assert.True(t, IsStoreError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsStoreError(errors.New("plain")))
}
