package controllers

// List endpoints page with a flat limit; there is no cursoring.
const (
	defaultListLimit = 50
	maxListLimit     = 200
)
