// Package filtering provides the faceted filters of the module listing.
//
// A filter is declared once against a typed attribute of an item and from that
// single declaration produces three things that must never disagree:
//
//   - a Descriptor consumed by the page runtime (id, client expression, kind, values)
//   - an HTML control group rendered on the server
//   - a predicate deciding whether an item matches the client filter state
//
// # Filter Kinds
//
//   - Slider: an ordinal range. Items without a value always match; otherwise
//     the value must lie within the inclusive {"min", "max"} bounds. A bound that
//     is not an integer rejects the item.
//   - Checkboxes: a single-valued enum. The state maps option names to booleans.
//     Items without a value match, as do items whose value is checked. When no
//     option is checked at all the filter lets everything through.
//   - Flags: a bit-flag enum. The state maps option names to "y" (bit required)
//     or "n" (bit forbidden). Anything else leaves the bit unconstrained.
//
// # Options
//
// Options come from an enum.Table: only members carrying a filter marker are
// offered, in declaration order. Labels are localization references resolved
// at render time through a Localizer, so one Registry serves every language.
//
// # DOM Contract
//
// The page runtime locates controls by id: filter-{id} for sliders,
// filter-{id}-{option} for checkboxes and filter-{id}-{option}-{y|n|e} for
// flag radios. These ids must stay stable.
//
// # Usage Example
//
//	reg, err := filtering.NewRegistry(primary, secondary)
//	if err != nil {
//		return err
//	}
//	ok, failed := reg.Match(module, gjson.ParseBytes(state))
package filtering
