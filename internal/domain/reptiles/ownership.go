package reptiles

// OwnedBy expone el dueño del reptil. Satisface authz.Owned, así
// GetByID sirve directo como lookup de authz.AuthorizeParent en los
// módulos hijos (feedings, husbandry, schedules) sin ciclos de imports.
func (r Reptile) OwnedBy() int64 {
	return r.OwnerUserID
}
