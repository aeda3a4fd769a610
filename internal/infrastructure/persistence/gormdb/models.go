package gormdb

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/catalog/internal/domain/catalog"
)

// NamedModel 作者/出版社/类型共用的表结构
// name在所有记录（包括已软删除的）中唯一
type NamedModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:255;not null"`
	IsActive  bool   `gorm:"index;not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AuthorModel struct{ NamedModel }

func (AuthorModel) TableName() string { return "authors" }

type EditorialModel struct{ NamedModel }

func (EditorialModel) TableName() string { return "editorials" }

type GenreModel struct{ NamedModel }

func (GenreModel) TableName() string { return "genres" }

// catalogTables 资源类型 → 表名
var catalogTables = map[catalog.Kind]string{
	catalog.KindAuthor:    AuthorModel{}.TableName(),
	catalog.KindEditorial: EditorialModel{}.TableName(),
	catalog.KindGenre:     GenreModel{}.TableName(),
}

// BookModel GORM图书模型
// 外键约束RESTRICT：目录资源只做软删除，物理删除被引用的行会失败
// is_available不设默认值，否则创建时false会被GORM当作零值替换为默认值
type BookModel struct {
	ID          uint            `gorm:"primaryKey"`
	Title       string          `gorm:"size:255;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IsAvailable bool            `gorm:"not null"`
	IsActive    bool            `gorm:"index;not null;default:true"`
	AuthorID    uint            `gorm:"index;not null"`
	EditorialID uint            `gorm:"index;not null"`
	GenreID     uint            `gorm:"index;not null"`
	Author      *AuthorModel    `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Editorial   *EditorialModel `gorm:"foreignKey:EditorialID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Genre       *GenreModel     `gorm:"foreignKey:GenreID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (BookModel) TableName() string { return "books" }

// UserModel GORM用户模型
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Password  string `gorm:"size:255;not null"`
	IsActive  bool   `gorm:"index;not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string { return "users" }
