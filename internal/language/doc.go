// Package language normalizes the language codes media containers carry.
//
// Stream tags mix ISO 639-1 codes, ISO 639-2 codes in both spellings, and
// plain English words for the same language. The helpers here map between
// those forms and a display name; templates reach them through the lang,
// iso2, and iso3 functions.
package language
