// Package services orchestrates a load run: computing the dates, reading the
// loader document, generating each table's statements and executing them
// over a single database session.
package services
