// Package domain contains the core business entities for gapscan:
// the seed topic catalog, scraped video/question signals, channel
// profiles, and the derived gap scores, correction opportunities and
// run reports. Types here are pure values with no infrastructure
// dependencies.
package domain
