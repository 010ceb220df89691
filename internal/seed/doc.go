// Package seed generates the ordered sequence of postal-code seeds that
// covers a closed numeric range without gaps.
//
// The generator samples the range at a fixed step. With jitter enabled the
// first sample is shifted to the center of each step-sized bucket, which
// reduces systematic bias versus always sampling bucket left-edges and
// improves geographic coverage for a fixed number of queries.
package seed
