package transaction

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBook_Append(t *testing.T) {
	b := NewBook()

	b.Append("food", Transaction{Amount: 25.50, Type: Expense, Date: "2024-01-02"})
	b.Append("salary", Transaction{Amount: 2000, Type: Income, Date: "2024-01-01"})
	b.Append("food", Transaction{Amount: 15.25, Type: Expense, Date: "2024-01-03"})

	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 3, b.Count())
	assert.Equal(t, []string{"food", "salary"}, b.Categories())

	food, ok := b.Transactions("food")
	require.True(t, ok)
	require.Len(t, food, 2)
	assert.Equal(t, 25.50, food[0].Amount)
	assert.Equal(t, 15.25, food[1].Amount)

	_, ok = b.Transactions("rent")
	assert.False(t, ok)
}

func TestBook_TransactionsReturnsCopy(t *testing.T) {
	b := NewBook()
	b.Append("food", Transaction{Amount: 1, Type: Expense, Date: "2024-01-02"})

	list, _ := b.Transactions("food")
	list[0].Amount = 99

	again, _ := b.Transactions("food")
	assert.Equal(t, 1.0, again[0].Amount)
}

func TestBook_SetAndRemoveAt(t *testing.T) {
	b := NewBook()
	for _, a := range []float64{1, 2, 3} {
		b.Append("food", Transaction{Amount: a, Type: Expense, Date: "2024-01-02"})
	}

	assert.True(t, b.Set("food", 1, Transaction{Amount: 20, Type: Income, Date: "2024-02-02"}))
	assert.False(t, b.Set("food", 3, Transaction{}))
	assert.False(t, b.Set("rent", 0, Transaction{}))

	assert.True(t, b.RemoveAt("food", 0))
	list, _ := b.Transactions("food")
	require.Len(t, list, 2)
	assert.Equal(t, 20.0, list[0].Amount)
	assert.Equal(t, 3.0, list[1].Amount)

	assert.False(t, b.RemoveAt("food", -1))
	assert.False(t, b.RemoveAt("food", 2))
}

func TestBook_Remove(t *testing.T) {
	b := NewBook()
	b.Append("a", Transaction{Amount: 1, Type: Income, Date: "2024-01-01"})
	b.Append("b", Transaction{Amount: 2, Type: Income, Date: "2024-01-01"})
	b.Append("c", Transaction{Amount: 3, Type: Income, Date: "2024-01-01"})

	assert.True(t, b.Remove("b"))
	assert.False(t, b.Remove("b"))
	assert.False(t, b.Has("b"))
	assert.Equal(t, []string{"a", "c"}, b.Categories())
}

func TestBook_JSONKeepsCategoryOrder(t *testing.T) {
	b := NewBook()
	b.Append("salary", Transaction{Amount: 2000, Type: Income, Date: "2024-01-01"})
	b.Append("food", Transaction{Amount: 12.5, Type: Expense, Date: "2024-01-05"})
	b.Append("bills", Transaction{Amount: 80, Type: Expense, Date: "2024-01-09"})
	b.Append("food", Transaction{Amount: 3.75, Type: Expense, Date: "2024-01-06"})

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"salary": [{"amount": 2000, "transaction_type": "income", "date": "2024-01-01"}],
		"food": [
			{"amount": 12.5, "transaction_type": "expense", "date": "2024-01-05"},
			{"amount": 3.75, "transaction_type": "expense", "date": "2024-01-06"}
		],
		"bills": [{"amount": 80, "transaction_type": "expense", "date": "2024-01-09"}]
	}`, string(data))

	decoded := NewBook()
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, b.Groups(), decoded.Groups())
}

func TestBook_UnmarshalJSON(t *testing.T) {
	b := NewBook()
	err := json.Unmarshal([]byte(`{"zeta": [], "alpha": null, "zeta": [{"amount": 5, "transaction_type": "income", "date": "2024-03-01"}]}`), b)
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha"}, b.Categories())
	zeta, _ := b.Transactions("zeta")
	assert.Len(t, zeta, 1)
	alpha, ok := b.Transactions("alpha")
	assert.True(t, ok)
	assert.Empty(t, alpha)

	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), NewBook()))
	assert.Error(t, json.Unmarshal([]byte(`{"food": "nope"}`), NewBook()))
}

func TestBook_EmptyCategoryMarshalsAsArray(t *testing.T) {
	b := NewBook()
	b.Append("food", Transaction{Amount: 1, Type: Expense, Date: "2024-01-01"})
	require.True(t, b.RemoveAt("food", 0))

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, `{"food":[]}`, string(data))
}
