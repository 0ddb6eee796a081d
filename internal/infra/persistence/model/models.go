package model

// All lists every persistence model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&UserDeviceModel{},
		&CategoryModel{},
		&ProductModel{},
		&CollectionModel{},
		&CartModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
	}
}
