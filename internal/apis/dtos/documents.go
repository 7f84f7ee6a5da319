package dtos

type InsertManyResponse struct {
	Success       bool `json:"success"`
	InsertedCount int  `json:"insertedCount"`
}
