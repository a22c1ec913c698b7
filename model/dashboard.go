package model

import "time"

/*

Dashboard is one user-owned dataset of uploaded posts

Id: primary key, use to identify a dashboard
CreatedAt: time when entity is created
UpdatedAt: bumped on rename and on every upload into the dashboard
UserID:
User: owning user, "belongs-to" relation

Name: dashboard's display name
DatasetSize: count of owned posts, computed on read and never stored

*/
type Dashboard struct {
	Id          string `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UserID      string    `gorm:"index" json:"userId"`
	User        User      `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Name        string    `json:"name"`
	DatasetSize int64     `gorm:"-" json:"datasetSize"`
}
