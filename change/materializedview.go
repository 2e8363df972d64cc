package change

// CreateMaterializedView creates a materialized view.
type CreateMaterializedView struct {
	ID         string
	Schema     string
	Name       string
	Definition string
}

func (c *CreateMaterializedView) StableID() string    { return c.ID }
func (c *CreateMaterializedView) Kind() Kind          { return KindMaterializedView }
func (c *CreateMaterializedView) Operation() Operation { return OpCreate }

// DropMaterializedView drops a materialized view.
type DropMaterializedView struct {
	ID     string
	Schema string
	Name   string
}

func (d *DropMaterializedView) StableID() string    { return d.ID }
func (d *DropMaterializedView) Kind() Kind          { return KindMaterializedView }
func (d *DropMaterializedView) Operation() Operation { return OpDrop }

// ReplaceMaterializedView models a definition change. Postgres has no
// ALTER-in-place path for a materialized view's query, so the emitter lowers
// this to DROP followed by CREATE rather than a single statement; it is kept
// as one Change so the resolver treats it as one atomic unit of ordering.
type ReplaceMaterializedView struct {
	ID         string
	Schema     string
	Name       string
	Definition string
}

func (r *ReplaceMaterializedView) StableID() string    { return r.ID }
func (r *ReplaceMaterializedView) Kind() Kind          { return KindMaterializedView }
func (r *ReplaceMaterializedView) Operation() Operation { return OpReplace }
