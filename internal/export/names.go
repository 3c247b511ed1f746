package export

import "fmt"

// itemNames maps item IDs to display names. Unknown IDs fall back to a
// range-based guess in ItemName.
var itemNames = map[int]string{
	// Starter items
	1054: "Doran's Ring",
	1055: "Doran's Blade",
	1056: "Doran's Shield",
	1082: "Dark Seal",
	1083: "Cull",

	// Boots
	1001: "Boots of Speed",
	3006: "Berserker's Greaves",
	3009: "Boots of Swiftness",
	3020: "Sorcerer's Shoes",
	3047: "Plated Steelcaps",
	3111: "Mercury's Treads",
	3117: "Mobility Boots",
	3158: "Ionian Boots of Lucidity",

	// Mythics
	2065: "Shurelya's Battlesong",
	3078: "Trinity Force",
	3089: "Rabadon's Deathcap",
	3152: "Hextech Rocketbelt",
	3190: "Locket of the Iron Solari",
	4005: "Imperial Mandate",
	4637: "Watchful Wardstone",
	4645: "Vigilant Wardstone",
	6653: "Riftmaker",
	6655: "Luden's Tempest",
	6656: "Liandry's Anguish",
	6662: "Iceborn Gauntlet",
	6664: "Turbo Chemtank",
	6671: "Galeforce",
	6672: "Kraken Slayer",
	6673: "Immortal Shieldbow",

	// Legendaries
	3001: "Abyssal Mask",
	3003: "Archangel's Staff",
	3004: "Manamune",
	3031: "Infinity Edge",
	3033: "Mortal Reminder",
	3036: "Lord Dominik's Regards",
	3050: "Zeke's Convergence",
	3053: "Sterak's Gage",
	3057: "Sheen",
	3065: "Spirit Visage",
	3068: "Sunfire Aegis",
	3071: "Black Cleaver",
	3072: "Bloodthirster",
	3074: "Ravenous Hydra",
	3075: "Thornmail",
	3083: "Warmog's Armor",
	3085: "Runaan's Hurricane",
	3091: "Wit's End",
	3094: "Rapid Firecannon",
	3095: "Stormrazor",
	3100: "Lich Bane",
	3102: "Banshee's Veil",
	3107: "Redemption",
	3109: "Knight's Vow",
	3110: "Frozen Heart",
	3115: "Nashor's Tooth",
	3116: "Rylai's Crystal Scepter",
	3124: "Guinsoo's Rageblade",
	3135: "Void Staff",
	3139: "Mercurial Scimitar",
	3142: "Youmuu's Ghostblade",
	3143: "Randuin's Omen",
	3147: "Duskblade of Draktharr",
	3153: "Blade of the Ruined King",
	3156: "Maw of Malmortius",
	3157: "Zhonya's Hourglass",
	3165: "Morellonomicon",
	3173: "Redemption",
	3179: "Umbral Glaive",
	3181: "Sanguine Blade",
	3191: "Seeker's Armguard",
	3193: "Gargoyle Stoneplate",
	3211: "Spectre's Cowl",
	3222: "Mikael's Blessing",
	3504: "Ardent Censer",
	3508: "Essence Reaver",
	3742: "Dead Man's Plate",
	3748: "Titanic Hydra",
	3814: "Edge of Night",

	// Support items
	3303: "Spellthief's Edge",
	3306: "Relic Shield",
	3850: "Spellthief's Edge",
	3851: "Frostfang",
	3853: "Shard of True Ice",
	3854: "Steel Shoulderguards",
	3855: "Runesteel Spaulders",
	3857: "Pauldrons of Whiterock",
	3858: "Relic Shield",
	3859: "Targon's Buckler",
	3860: "Bulwark of the Mountain",
	3862: "Spectral Sickle",
	3863: "Harrowing Crescent",
	3864: "Black Mist Scythe",

	// Trinkets
	3330: "Scarecrow Effigy",
	3340: "Warding Totem",
	3348: "Arcane Sweeper",
	3363: "Farsight Alteration",
	3364: "Oracle Lens",

	// Consumables
	2003: "Health Potion",
	2010: "Total Biscuit of Everlasting Will",
	2031: "Refillable Potion",
	2033: "Corrupting Potion",
	2055: "Control Ward",
	2138: "Elixir of Iron",
	2139: "Elixir of Sorcery",
	2140: "Elixir of Wrath",

	// Special
	3400: "Your Cut",
	3513: "Eye of the Herald",
	3907: "Fire at Will",
	3908: "Death's Daughter",
	3916: "Raise Morale",
}

var summonerSpells = map[int]string{
	1:  "Cleanse",
	3:  "Exhaust",
	4:  "Flash",
	6:  "Ghost",
	7:  "Heal",
	11: "Smite",
	12: "Teleport",
	13: "Clarity",
	14: "Ignite",
	21: "Barrier",
	30: "To the King!",
	31: "Poro Toss",
	32: "Mark",
	39: "Mark",
}

// ItemName returns the display name for an item ID. Empty slots (ID 0)
// return "".
func ItemName(id int) string {
	if id == 0 {
		return ""
	}
	if name, ok := itemNames[id]; ok {
		return name
	}
	switch {
	case id >= 1001 && id <= 1999:
		return fmt.Sprintf("Boots (ID: %d)", id)
	case id >= 2000 && id <= 2999:
		return fmt.Sprintf("Consumable (ID: %d)", id)
	case id >= 3000 && id <= 3999:
		return fmt.Sprintf("Legendary Item (ID: %d)", id)
	case id >= 4000 && id <= 4999:
		return fmt.Sprintf("Mythic Item (ID: %d)", id)
	default:
		return fmt.Sprintf("Item %d", id)
	}
}

// SummonerSpellName returns the display name for a summoner spell ID.
func SummonerSpellName(id int) string {
	if name, ok := summonerSpells[id]; ok {
		return name
	}
	return fmt.Sprintf("Spell %d", id)
}
