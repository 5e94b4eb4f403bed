// Package query holds the pure query and aggregation functions behind the
// job board views: filtering, ordering, pagination and derived statistics.
//
// Every function is synchronous and side-effect free. Inputs are never
// modified; results are freshly allocated slices that share element values
// with the input. Within one request the fixed order is filter, sort, then
// paginate.
package query
