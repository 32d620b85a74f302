// Package catalog fetches product listings and pages through them.
//
// The remote feed returns a language's whole product list in one response;
// Pager caches it and hands it out in fixed-size pages up to a cap.
package catalog
