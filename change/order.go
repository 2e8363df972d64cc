package change

// columnOpRank gives each ColumnOp kind a sort weight so a caller building an
// AlterTable's Operations slice can enforce: drops before adds of the same
// column name, type changes before default changes on the same column. It
// does not reorder operations touching different columns relative to each
// other; only same-column ordering is contractual.
func columnOpRank(op ColumnOp) int {
	switch op.(type) {
	case DropColumn:
		return 0
	case AddColumn:
		return 1
	case AlterColumnType:
		return 2
	case AlterColumnSetDefault, AlterColumnDropDefault:
		return 3
	case AlterColumnSetNotNull, AlterColumnDropNotNull:
		return 4
	case EnableRowLevelSecurity, DisableRowLevelSecurity:
		return 5
	default:
		return 99
	}
}

func columnOpColumnName(op ColumnOp) string {
	switch v := op.(type) {
	case AddColumn:
		return v.Column.Name
	case DropColumn:
		return v.ColumnName
	case AlterColumnType:
		return v.ColumnName
	case AlterColumnSetDefault:
		return v.ColumnName
	case AlterColumnDropDefault:
		return v.ColumnName
	case AlterColumnSetNotNull:
		return v.ColumnName
	case AlterColumnDropNotNull:
		return v.ColumnName
	default:
		return ""
	}
}

// SortColumnOps orders a slice of ColumnOp in place to satisfy the
// same-column ordering contract, stably preserving relative order across
// different columns.
func SortColumnOps(ops []ColumnOp) {
	// insertion sort: the slices built by the differ are always small
	// (one table's worth of column changes), and stability matters more
	// than asymptotic complexity here.
	for i := 1; i < len(ops); i++ {
		j := i
		for j > 0 && shouldSwap(ops[j-1], ops[j]) {
			ops[j-1], ops[j] = ops[j], ops[j-1]
			j--
		}
	}
}

func shouldSwap(a, b ColumnOp) bool {
	if columnOpColumnName(a) != columnOpColumnName(b) {
		return false
	}
	return columnOpRank(a) > columnOpRank(b)
}
