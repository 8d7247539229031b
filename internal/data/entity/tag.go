package entity

type Tag struct {
	BaseSimple
	Name string `db:"name"`
	Slug string `db:"slug"`
}
