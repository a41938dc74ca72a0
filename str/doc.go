// Package str holds small string conversions: snake and camel case,
// URL slugs from Polish text, delimited lower case and text shortening.
package str
