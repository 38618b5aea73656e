package types

// ProductInfo holds structured product information assembled from web search evidence.
type ProductInfo struct {
	Name           string   `json:"name"`
	Brand          *string  `json:"brand,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Ingredients    []string `json:"ingredients,omitempty"`
	Claims         []string `json:"claims,omitempty"`
	Price          *string  `json:"price,omitempty"`
	TargetAudience *string  `json:"target_audience,omitempty"`
	MainCategory   *string  `json:"main_category,omitempty"`
	SubCategory    *string  `json:"sub_category,omitempty"`
	ProductType    *string  `json:"product_type,omitempty"`
	WhatItDoes     *string  `json:"what_it_does,omitempty"`
	MainDifference *string  `json:"main_difference,omitempty"`
}
