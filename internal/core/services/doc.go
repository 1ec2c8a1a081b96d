// Package services implements the content-gap engine: topic and
// narrative matching, demand/supply gap scoring, opportunity
// classification, correction-opportunity detection, and report
// ranking. All services are pure single-pass computations over an
// immutable signal snapshot; re-running on identical input produces
// an identical report.
package services
