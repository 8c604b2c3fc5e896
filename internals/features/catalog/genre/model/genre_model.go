package model

type GenreModel struct {
	GenreID int    `gorm:"column:genre_id;primaryKey;autoIncrement" json:"genre_id"`
	Name    string `gorm:"column:name;type:varchar(100);not null;unique" json:"name"`
}

func (GenreModel) TableName() string {
	return "genres"
}
