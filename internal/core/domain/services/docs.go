// Package services contains stateless domain services that operate across
// aggregates. BillingAggregator rolls a work order's timesheet entries and
// line items up into invoice totals without touching persistence.
package services
