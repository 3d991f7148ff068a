package model

const (
	TableName  = "tags"
	EntityName = "tag"

	FieldID   = "id"
	FieldName = "name"
)

type Tag struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

const (
	PivotTableName  = "office_tags"
	PivotEntityName = "office_tag"

	PivotFieldOfficeID = "office_id"
	PivotFieldTagID    = "tag_id"
	PivotFieldPosition = "position"
)

// OfficeTag is a row of the office_tags pivot. Position preserves the order
// the tag ids were supplied in on the office write.
type OfficeTag struct {
	OfficeID string `db:"office_id"`
	TagID    int64  `db:"tag_id"`
	Position int    `db:"position"`
}
