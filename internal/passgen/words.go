package passgen

// wordList holds short common words for passphrase generation. Lowercase,
// no duplicates.
var wordList = []string{
	"able", "acorn", "actor", "adopt", "after", "agent", "alarm", "amber",
	"anchor", "angle", "ankle", "apple", "apron", "arrow", "aspen", "atlas",
	"autumn", "badge", "bagel", "baker", "bamboo", "barley", "basil", "beach",
	"beacon", "berry", "birch", "bison", "blaze", "bloom", "bolt", "bonus",
	"breeze", "brick", "bridge", "brook", "bucket", "butter", "cabin", "cactus",
	"camel", "candle", "canoe", "canyon", "carbon", "cargo", "carrot", "castle",
	"cedar", "cello", "chalk", "cherry", "chess", "cider", "cinder", "citrus",
	"clover", "cobalt", "cocoa", "comet", "copper", "coral", "cotton", "cradle",
	"crane", "crater", "cricket", "crystal", "cumin", "curve", "dahlia", "daisy",
	"dawn", "delta", "denim", "dewdrop", "dome", "drift", "eagle", "early",
	"ebony", "echo", "elder", "ember", "falcon", "fern", "fiddle", "flint",
	"forest", "frost", "galaxy", "garnet", "gecko", "ginger", "glacier", "goose",
	"granite", "grove", "harbor", "hazel", "heron", "hollow", "honey", "humble",
	"indigo", "iris", "ivory", "jade", "jasper", "juniper", "kayak", "kernel",
	"lagoon", "lantern", "larch", "lemon", "lilac", "linen", "lotus", "lunar",
	"maple", "marble", "meadow", "melon", "mesa", "mint", "mosaic", "moss",
	"mural", "nectar", "nimble", "north", "nutmeg", "ocean", "olive", "onyx",
	"opal", "orbit", "orchard", "otter", "panda", "pebble", "pepper", "pine",
	"plume", "polar", "poplar", "prism", "quartz", "quill", "raven", "reed",
	"ridge", "river", "robin", "rustic", "saddle", "saffron", "sage", "salmon",
	"sandal", "sierra", "silver", "sparrow", "spruce", "stone", "summit", "sunset",
	"tiger", "timber", "topaz", "trail", "tulip", "tundra", "velvet", "violet",
	"walnut", "willow", "winter", "wren", "yarrow", "zephyr",
}
