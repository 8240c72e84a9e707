// Package api defines the tipcalc.v1.TipService wire contract: request and
// response messages, procedure names, the JSON codec both ends use, and
// helpers to mount the service on a mux or call it as a client.
package api
