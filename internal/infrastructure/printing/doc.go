// Package printing renders purchase order documents to PDF.
//
// The pipeline is template engine -> headless Chrome -> storage. An
// embedded HTML template is filled from a view model built off the
// domain aggregates, printed to A4 through the Chrome DevTools
// Protocol, and archived on the filesystem or in S3.
package printing
