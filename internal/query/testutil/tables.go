package testutil

import (
	"github.com/Vec-io/RAGs.FYI/internal/domain/data"
	"github.com/Vec-io/RAGs.FYI/internal/domain/schema"
)

// ProviderColumns is the column list used by most tests
func ProviderColumns() []schema.Column {
	return []schema.Column{
		{Key: "name", Label: "Name"},
		{Key: "oss", Label: "Open Source"},
		{Key: "pricing", Label: "Pricing"},
	}
}

// CreateTestSchema builds the providers schema
func CreateTestSchema() *schema.TableSchema {
	s, err := schema.NewTableSchema("providers", ProviderColumns())
	if err != nil {
		panic(err)
	}
	return s
}

// CreateTestTable creates a providers table holding rows
func CreateTestTable(rows ...data.Row) *schema.Table {
	table, err := schema.NewTable(CreateTestSchema(), rows, schema.RowPolicyStrict, nil)
	if err != nil {
		panic(err)
	}
	return table
}

// TwoProviderRows returns the two-row fixture: Vectara (closed) and LlamaCloud (open)
func TwoProviderRows() []data.Row {
	return []data.Row{
		{"name": "Vectara", "oss": "No", "pricing": "Usage-based"},
		{"name": "LlamaCloud", "oss": "Yes", "pricing": "Free tier, then credits"},
	}
}

// CreateProvidersTable creates the two-row providers table
func CreateProvidersTable() *schema.Table {
	return CreateTestTable(TwoProviderRows()...)
}

// CreateWideTable creates a providers table with ties and a row missing "pricing"
func CreateWideTable() *schema.Table {
	return CreateTestTable(
		data.Row{"name": "Vectara", "oss": "No", "pricing": "Usage-based"},
		data.Row{"name": "LlamaCloud", "oss": "Yes", "pricing": "Free tier, then credits"},
		data.Row{"name": "Ragie", "oss": "No", "pricing": "Free tier"},
		data.Row{"name": "R2R", "oss": "Yes"},
		data.Row{"name": "Carbon", "oss": "No", "pricing": "Enterprise"},
	)
}

// Names extracts the "name" column of rows, in order
func Names(rows []data.Row) []string {
	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.Get("name")
	}
	return names
}
