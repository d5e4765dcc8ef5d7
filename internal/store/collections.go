package store

import "github.com/drbuilds/builds-backend/internal/domain"

func (s *Store) LoadWeapons() []domain.Weapon { return readCollection[domain.Weapon](s, weaponsFile) }

func (s *Store) SaveWeapons(weapons []domain.Weapon) error {
	return saveCollection(s, weaponsFile, weapons)
}

func (s *Store) AddWeapon(w domain.Weapon) error {
	return upsert(s, weaponsFile, w, func(w domain.Weapon) string { return w.ID })
}

func (s *Store) LoadArmor() []domain.Armor { return readCollection[domain.Armor](s, armorFile) }

func (s *Store) SaveArmor(armor []domain.Armor) error {
	return saveCollection(s, armorFile, armor)
}

func (s *Store) AddArmor(a domain.Armor) error {
	return upsert(s, armorFile, a, func(a domain.Armor) string { return a.ID })
}

func (s *Store) LoadMods() []domain.Mod { return readCollection[domain.Mod](s, modsFile) }

func (s *Store) SaveMods(mods []domain.Mod) error {
	return saveCollection(s, modsFile, mods)
}

func (s *Store) AddMod(m domain.Mod) error {
	return upsert(s, modsFile, m, func(m domain.Mod) string { return m.ID })
}

func (s *Store) LoadArtifacts() []domain.Artifact {
	return readCollection[domain.Artifact](s, artifactsFile)
}

func (s *Store) SaveArtifacts(artifacts []domain.Artifact) error {
	return saveCollection(s, artifactsFile, artifacts)
}

func (s *Store) AddArtifact(a domain.Artifact) error {
	return upsert(s, artifactsFile, a, func(a domain.Artifact) string { return a.ID })
}

func (s *Store) LoadSubclasses() []domain.Subclass {
	return readCollection[domain.Subclass](s, subclassesFile)
}

func (s *Store) SaveSubclasses(subclasses []domain.Subclass) error {
	return saveCollection(s, subclassesFile, subclasses)
}

func (s *Store) LoadActivities() []domain.Activity {
	return readCollection[domain.Activity](s, activitiesFile)
}

func (s *Store) SaveActivities(activities []domain.Activity) error {
	return saveCollection(s, activitiesFile, activities)
}

func (s *Store) LoadVendors() []domain.Vendor { return readCollection[domain.Vendor](s, vendorsFile) }

func (s *Store) SaveVendors(vendors []domain.Vendor) error {
	return saveCollection(s, vendorsFile, vendors)
}

func (s *Store) LoadMeta() []domain.BuildMeta { return readCollection[domain.BuildMeta](s, metaFile) }

func (s *Store) SaveMeta(meta []domain.BuildMeta) error {
	return saveCollection(s, metaFile, meta)
}
