// Package models defines the values the tip calculator exposes for display.
//
// # View
//
// A View is an immutable snapshot of one tip form: the raw bill text, the
// split counter and its bounds, the slider position and the two derived
// amounts. The form controller publishes a fresh View after every input
// event that changed something; renderers project it and never write back.
//
// Derived fields (TipPercent, TipAmount, TotalPerPerson, Valid) are always
// computed by the controller. Nothing outside the controller sets them.
package models
