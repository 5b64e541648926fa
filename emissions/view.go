package emissions

// ============================================================================
// TABLE VIEW — Read-Only Data Access Interface
// ============================================================================
// The aggregator never owns the dataset. It reads through this interface.
//
// Implementations:
//   SliceView  — wraps []Row (CSV loader, fixtures, ad-hoc)
//   subView    — filtered subset (indices into parent, zero-copy)
//   dataset.ArrowView — reads Arrow record batches without copying
//
// Every operation is a stateless pass over a view; views are safe for
// concurrent readers as long as nothing mutates the backing data.
// ============================================================================

// TableView provides indexed access to a pollution dataset.
// The aggregator calls At in tight loops — keep implementations fast.
type TableView interface {
	Len() int
	At(i int) Row
}

// ============================================================================
// SLICE VIEW — wraps []Row
// ============================================================================

// SliceView wraps a []Row slice as a TableView.
type SliceView struct {
	rows []Row
}

// NewSliceView creates a TableView from a []Row slice. Zero-copy — the view
// holds a reference to the slice.
func NewSliceView(rows []Row) TableView {
	return &SliceView{rows: rows}
}

func (v *SliceView) Len() int { return len(v.rows) }

func (v *SliceView) At(i int) Row {
	if i < 0 || i >= len(v.rows) {
		return Row{}
	}
	return v.rows[i]
}

// ============================================================================
// SUB VIEW — filtered subset (zero-copy)
// ============================================================================

// subView is a filtered subset of a parent TableView.
// Holds indices into the parent — no data copy.
type subView struct {
	parent  TableView
	indices []int
}

func newSubView(parent TableView, indices []int) TableView {
	return &subView{parent: parent, indices: indices}
}

func (v *subView) Len() int { return len(v.indices) }

func (v *subView) At(i int) Row {
	if i < 0 || i >= len(v.indices) {
		return Row{}
	}
	return v.parent.At(v.indices[i])
}
