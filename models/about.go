package models

// AboutContent 關於我們的內容，整張表只會有id=1這一列
type AboutContent struct {
	ID      uint   `json:"-" gorm:"primaryKey"`
	Story   string `json:"story"`
	Usps    string `json:"usps"`
	Quality string `json:"quality"`
}

func (AboutContent) TableName() string {
	return "about_us"
}

// DefaultAbout 首次讀取時寫入的預設內容，沿用原站文案
func DefaultAbout() AboutContent {
	return AboutContent{
		ID:      1,
		Story:   "تأسس مطعم 'مع الهوى سوا' من حب عميق للمطبخ الأردني الأصيل. بدأنا رحلتنا بهدف واحد بسيط: تقديم نكهات المنزل الدافئة في أجواء عصرية ومريحة. قصتنا هي قصة شغف بالتفاصيل، من اختيار حبة الهيل وحتى تقديم الطبق بابتسامة.",
		Usps:    "نتميز بتقديم المأكولات التقليدية بلمسة عصرية، ونفخر باستخدامنا للسمن البلدي الأصلي وزيت الزيتون البكر. أجواؤنا العائلية وخدمتنا المميزة تجعل من كل زيارة ذكرى لا تنسى.",
		Quality: "الجودة ليست مجرد شعار لدينا، بل هي أسلوب حياة. نختار خضرواتنا ولحومنا يومياً من أفضل المزارع المحلية لضمان الطزاجة والنكهة. مطبخنا يلتزم بأعلى معايير النظافة وسلامة الغذاء.",
	}
}
