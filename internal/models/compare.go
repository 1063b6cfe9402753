package models

// CompareListEntry links a user to a property they want to compare.
// The same pair may appear more than once.
type CompareListEntry struct {
	ID         int64  `json:"id" gorm:"primaryKey"`
	UserID     int64  `json:"userId" gorm:"not null;index"`
	PropertyID int64  `json:"propertyId" gorm:"not null"`
	AddedAt    string `json:"addedAt" gorm:"not null"`
}

func (CompareListEntry) TableName() string {
	return "compare_list"
}

type InsertCompareListEntry struct {
	UserID     *int64 `json:"userId" binding:"required,min=0"`
	PropertyID *int64 `json:"propertyId" binding:"required,min=0"`
	AddedAt    string `json:"addedAt" binding:"required"`
}

func (in InsertCompareListEntry) ToEntry(id int64) CompareListEntry {
	return CompareListEntry{
		ID:         id,
		UserID:     deref(in.UserID),
		PropertyID: deref(in.PropertyID),
		AddedAt:    in.AddedAt,
	}
}
