// Package payment provides the payment method value entity and the provider
// boundary used to authorize charges.
//
// A Method is created from raw card input without validation so the boundary
// layer can collect partial input; Validate is invoked explicitly at commit
// time and reports the first violated rule as a typed error. Once validated a
// method is never mutated.
//
// Charge authorization is modeled as an explicit variant: a method either
// carries an attached Provider or is self-authorizing. There is no runtime
// capability probing.
package payment
