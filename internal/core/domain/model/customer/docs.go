// Package customer contains the customer aggregate and its owned delivery
// addresses. Addresses have no identity outside their customer, so every change
// goes through Customer, which keeps at most one address flagged as default.
package customer
