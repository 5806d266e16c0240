package entities

// Patient represents a single patient record as stored in the patients table.
// ID is generated by the database on insertion and is immutable afterwards.
// Name and Age are optional and map to nullable columns.
type Patient struct {
	ID   int64   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name *string `json:"name" db:"name" gorm:"size:50"`
	Age  *int    `json:"age" db:"age"`
}

// TableName overrides the default GORM table name.
func (Patient) TableName() string { return "patients" }
