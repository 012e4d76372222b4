// Copyright (c) 2025 Fieldworks Dev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster ingests the master subject roster from a spreadsheet.

Ingestion is full replacement inside one transaction: the previous batch
is deleted and the new one inserted, never merged. Within a batch the
first occurrence of a (section, dms_id) key wins.
*/
package roster
