package storage

// Namespace is the prefix shared by every key the application owns.
const Namespace = "sn_"

// Collection names a profile-scoped logical collection.
type Collection string

// Profile-scoped collections.
const (
	CollectionTransactions     Collection = "transactions"
	CollectionReminders        Collection = "reminders"
	CollectionBirthdays        Collection = "birthdays"
	CollectionBudgets          Collection = "budgets"
	CollectionScriptURL        Collection = "script_url"
	CollectionTheme            Collection = "theme"
	CollectionLastAnalysisDate Collection = "last_analysis_date"
)

// Collections lists every profile-scoped collection.
var Collections = []Collection{
	CollectionTransactions,
	CollectionReminders,
	CollectionBirthdays,
	CollectionBudgets,
	CollectionScriptURL,
	CollectionTheme,
	CollectionLastAnalysisDate,
}

// Profile-management keys, not scoped to any profile.
const (
	KeyProfilesList   = Namespace + "profiles_list_v1"
	KeyCurrentProfile = Namespace + "current_profile_active"
)

// Key derives the storage key for a profile's collection.
func Key(profile string, collection Collection) string {
	return Namespace + profile + "_" + string(collection)
}

// ProfilePrefix returns the key prefix shared by a profile's collections.
// It is a listing aid only: profile names may themselves contain "_", so a
// prefix match can span profiles and must never drive deletion.
func ProfilePrefix(profile string) string {
	return Namespace + profile + "_"
}
