// Package mapping provides the YAML schema, loading, validation and lookup
// of field-mapping documents.
//
// A mapping source holds one or more documents separated by a line that
// consists solely of "---". Each document describes one transaction type
// and the ordered fields of its fixed-width output record.
//
// # Schema Overview
//
//	sourceSystem: CORE_BANKING
//	jobName: daily-extract
//	transactionType: ACH_DEBIT
//	fields:
//	  - fieldName: recordType
//	    targetPosition: 1
//	    length: 3
//	    transformationType: constant
//	    value: "ACH"
//	  - fieldName: accountNumber
//	    targetPosition: 2
//	    length: 12
//	    transformationType: source
//	    sourceField: acct_no
//	    pad: left
//	    padChar: "0"
//	  - fieldName: riskFlag
//	    targetPosition: 3
//	    length: 9
//	    transformationType: conditional
//	    defaultValue: UNKNOWN
//	    conditions:
//	      - ifExpr: "status = 'BLOCKED'"
//	        then: HIGH_RISK
//	        elseIfExprs:
//	          - ifExpr: "amount >= 10000"
//	            then: REVIEW
//	        elseExpr: LOW_RISK
//	  - fieldName: balance
//	    targetPosition: 4
//	    length: 14
//	    transformationType: composite
//	    sources: [checking, savings]
//	    transform: sum
//	    pad: left
//	---
//	transactionType: WIRE_OUT
//	fields: []
//
// # Transformation types
//
//   - source: copy a row field (sourceField), falling back to defaultValue
//   - constant: emit value, falling back to defaultValue
//   - conditional: evaluate the first conditions entry as an if/else-if/else chain
//   - composite: combine sources with a delimiter or a numeric aggregate
//
// # Loading
//
// Loading is all-or-nothing: a document that fails to decode or validate
// aborts the load with a *ParseError carrying its 0-based ordinal in the
// source. A missing source fails with ErrResourceNotFound, and a lookup
// for an absent transaction type fails with ErrMappingNotFound.
package mapping
