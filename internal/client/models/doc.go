// Package models defines the client-side data shapes exchanged with the
// Momentum service: objectives, tips, check-ins, profiles, hobbies and
// workout plans. JSON tags follow the service's snake_case wire format.
package models
