// Package load turns one table's load policy and a list of partition dates
// into the literal SQL a Vertica COPY load is made of.
//
// For a table with truncate enabled and one date the generated sequence is:
//
//	TRUNCATE TABLE foo;
//	COPY foo FROM LOCAL '/data/2017-08-17/foo' DELIMITER ',' SKIP 1 DIRECT;
//	INSERT INTO last_updated (name, updated_at, updated_by) VALUES ('foo', now(), 'Vertica-CSV-Loader');
//	COMMIT;
//
// Each further date adds its own DELETE (optional), COPY, INSERT and COMMIT
// block, so a failure on one day leaves the earlier days committed.
//
// Table names, paths and field lists are interpolated verbatim. Only the
// field/value delete predicate is filtered, because its value is rendered
// from a template into a string literal.
package load
